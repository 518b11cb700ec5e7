package chain

import (
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/cryptofundit/cryptofundit-go/internal/logging"
)

// Facade owns the two contract handles. The read-only handle exists for the
// lifetime of the process; the signer-bound handle is created by Bind after
// a successful connect and destroyed by Teardown on disconnect. Handles are
// replaced wholesale, never mutated in place.
type Facade struct {
	mu      sync.RWMutex
	address common.Address
	abi     abi.ABI
	client  *ethclient.Client
	reader  *Reader
	writer  *Writer
	parser  *Parser
	log     logging.Logger
}

// NewFacade builds a facade over the contract at address, using client as the
// fixed read-only RPC backend.
func NewFacade(client *ethclient.Client, address common.Address, log logging.Logger) *Facade {
	contractABI := ContractABI()
	bound := bind.NewBoundContract(address, contractABI, client, nil, client)

	return &Facade{
		address: address,
		abi:     contractABI,
		client:  client,
		reader:  &Reader{bound: bound},
		parser:  NewParser(address),
		log:     log,
	}
}

// Reader returns the read-only handle. It is always available and safe for
// concurrent use; it performs no mutation.
func (f *Facade) Reader() *Reader {
	return f.reader
}

// Parser returns the event parser for the contract.
func (f *Facade) Parser() *Parser {
	return f.parser
}

// Client exposes the underlying RPC client for log queries and balance reads.
func (f *Facade) Client() *ethclient.Client {
	return f.client
}

// Address returns the contract address.
func (f *Facade) Address() common.Address {
	return f.address
}

// Bind replaces the signer-bound handle with a fresh one built from opts.
// Called by the session manager on every successful connect or restore.
func (f *Facade) Bind(opts *bind.TransactOpts) {
	bound := bind.NewBoundContract(f.address, f.abi, f.client, f.client, f.client)

	f.mu.Lock()
	f.writer = &Writer{bound: bound, opts: opts, backend: f.client, log: f.log}
	f.mu.Unlock()
}

// Teardown drops the signer-bound handle. Runs synchronously with the
// Disconnected transition.
func (f *Facade) Teardown() {
	f.mu.Lock()
	f.writer = nil
	f.mu.Unlock()
}

// Signer returns the current signer-bound handle, or ErrNotConnected. Callers
// must fetch the handle per operation rather than retaining it, so a
// disconnect in between is observed.
func (f *Facade) Signer() (*Writer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.writer == nil {
		return nil, ErrNotConnected
	}
	return f.writer, nil
}
