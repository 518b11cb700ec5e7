package session

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/cryptofundit/cryptofundit-go/internal/client/store"
	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
	"github.com/cryptofundit/cryptofundit-go/internal/logging"
)

// Session is a snapshot of the connected wallet. Balance is informational
// and refreshed on demand; it is never used for validation.
type Session struct {
	Address common.Address
	Backend string
	Balance *big.Int
}

// contractBinder is the slice of the contract facade the manager drives.
type contractBinder interface {
	Bind(opts *bind.TransactOpts)
	Teardown()
}

// balanceReader reads an account balance; satisfied by ethclient.Client.
type balanceReader interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// Manager owns the session state machine. All transitions are atomic: the
// facade's signer handle, the persisted hints, and the in-memory session
// move together.
type Manager struct {
	store    store.Store
	facade   contractBinder
	balances balanceReader
	backends map[string]Backend
	log      logging.Logger

	mu      sync.RWMutex
	current *Session
}

// NewManager builds a manager over the given backends.
func NewManager(st store.Store, facade contractBinder, balances balanceReader, log logging.Logger, backends ...Backend) *Manager {
	m := &Manager{
		store:    st,
		facade:   facade,
		balances: balances,
		backends: make(map[string]Backend, len(backends)),
		log:      log,
	}
	for _, b := range backends {
		m.backends[b.Kind()] = b
	}
	return m
}

// Connect establishes a session through the named backend. On success the
// facade is bound to the account and the restoration hints are persisted.
func (m *Manager) Connect(ctx context.Context, kind string) (*Session, error) {
	backend, ok := m.backends[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}

	addr, opts, err := backend.Connect(ctx)
	if err != nil {
		return nil, err
	}

	m.facade.Bind(opts)

	if err := m.store.Set(store.KeyAddress, addr.Hex()); err != nil {
		m.log.Warn(ctx, "persisting session hint failed", "error", err)
	}
	if err := m.store.Set(store.KeyBackend, kind); err != nil {
		m.log.Warn(ctx, "persisting session hint failed", "error", err)
	}

	s := &Session{Address: addr, Backend: kind, Balance: m.snapshotBalance(ctx, addr)}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.log.Info(ctx, "wallet connected", "address", addr.Hex(), "backend", kind)
	return s, nil
}

// RestoreOnLoad silently re-establishes the previous session from the
// persisted hints. Any failure, including an account mismatch, lands in the
// Disconnected state with the stale hints cleared; it never errors out to
// the caller and never prompts.
func (m *Manager) RestoreOnLoad(ctx context.Context) *Session {
	storedAddr, err := m.store.Get(store.KeyAddress)
	if err != nil {
		return nil
	}
	storedKind, err := m.store.Get(store.KeyBackend)
	if err != nil {
		m.clearHints(ctx)
		return nil
	}

	backend, ok := m.backends[storedKind]
	if !ok {
		m.log.Warn(ctx, "stored wallet backend unavailable", "backend", storedKind)
		m.clearHints(ctx)
		return nil
	}

	addr := common.HexToAddress(storedAddr)
	opts, err := backend.Resume(ctx, addr)
	if err != nil {
		m.log.Info(ctx, "session restore failed", "error", err)
		m.clearHints(ctx)
		return nil
	}

	if !strings.EqualFold(opts.From.Hex(), storedAddr) {
		m.log.Warn(ctx, "restored account does not match stored session",
			"stored", storedAddr, "restored", opts.From.Hex())
		_ = backend.Terminate()
		m.clearHints(ctx)
		return nil
	}

	m.facade.Bind(opts)

	s := &Session{Address: opts.From, Backend: storedKind, Balance: m.snapshotBalance(ctx, opts.From)}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "address", opts.From.Hex(), "backend", storedKind)
	return s
}

// Disconnect tears the session down: backend capability, signer handle,
// persisted hints, in-memory state. Safe to call when disconnected.
func (m *Manager) Disconnect(ctx context.Context) {
	m.mu.Lock()
	s := m.current
	m.current = nil
	m.mu.Unlock()

	if s == nil {
		return
	}

	if backend, ok := m.backends[s.Backend]; ok {
		if err := backend.Terminate(); err != nil {
			m.log.Warn(ctx, "backend termination failed", "error", err)
		}
	}
	m.facade.Teardown()
	m.clearHints(ctx)

	m.log.Info(ctx, "wallet disconnected", "address", s.Address.Hex())
}

// Current returns the active session, or nil when disconnected.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// RefreshBalance re-reads the connected account's balance.
func (m *Manager) RefreshBalance(ctx context.Context) (*big.Int, error) {
	m.mu.RLock()
	s := m.current
	m.mu.RUnlock()

	if s == nil {
		return nil, appcommon.ErrNotConnected
	}
	balance, err := m.balances.BalanceAt(ctx, s.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("read balance: %w", err)
	}

	m.mu.Lock()
	if m.current == s {
		m.current.Balance = balance
	}
	m.mu.Unlock()

	return balance, nil
}

func (m *Manager) snapshotBalance(ctx context.Context, addr common.Address) *big.Int {
	if m.balances == nil {
		return nil
	}
	balance, err := m.balances.BalanceAt(ctx, addr, nil)
	if err != nil {
		m.log.Warn(ctx, "balance snapshot failed", "error", err)
		return nil
	}
	return balance
}

func (m *Manager) clearHints(ctx context.Context) {
	if err := m.store.Clear(); err != nil {
		m.log.Warn(ctx, "clearing session hints failed", "error", err)
	}
}
