package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

const KindWalletRPC = "walletrpc"

// rpcConn is the slice of rpc.Client the backend uses; a seam for tests.
type rpcConn interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	Close()
}

var dialWalletRPC = func(ctx context.Context, endpoint string) (rpcConn, error) {
	return rpc.DialContext(ctx, endpoint)
}

// WalletRPCBackend delegates account selection and signing to an external
// wallet node over JSON-RPC. The private key never enters this process;
// transactions go out unsigned via eth_signTransaction and come back raw.
// Terminate closes the connection, which revokes the signing capability.
type WalletRPCBackend struct {
	endpoint string

	mu   sync.Mutex
	conn rpcConn
}

func NewWalletRPCBackend(endpoint string) *WalletRPCBackend {
	return &WalletRPCBackend{endpoint: endpoint}
}

func (b *WalletRPCBackend) Kind() string { return KindWalletRPC }

func (b *WalletRPCBackend) Connect(ctx context.Context) (common.Address, *bind.TransactOpts, error) {
	addrs, err := b.listAccounts(ctx)
	if err != nil {
		return common.Address{}, nil, err
	}
	if len(addrs) == 0 {
		return common.Address{}, nil, appcommon.ErrNoWalletAvailable
	}
	addr := addrs[0]
	return addr, b.transactOpts(addr), nil
}

func (b *WalletRPCBackend) Resume(ctx context.Context, addr common.Address) (*bind.TransactOpts, error) {
	addrs, err := b.listAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range addrs {
		if strings.EqualFold(a.Hex(), addr.Hex()) {
			return b.transactOpts(a), nil
		}
	}
	return nil, appcommon.ErrNoWalletAvailable
}

func (b *WalletRPCBackend) Terminate() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	return nil
}

func (b *WalletRPCBackend) listAccounts(ctx context.Context) ([]common.Address, error) {
	conn, err := b.connect(ctx)
	if err != nil {
		return nil, err
	}

	var addrs []common.Address
	if err := conn.CallContext(ctx, &addrs, "eth_accounts"); err != nil {
		return nil, mapWalletError(err)
	}
	return addrs, nil
}

func (b *WalletRPCBackend) connect(ctx context.Context) (rpcConn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		return b.conn, nil
	}
	conn, err := dialWalletRPC(ctx, b.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appcommon.ErrConnectionFailed, err)
	}
	b.conn = conn
	return conn, nil
}

// signTransactionResult matches the eth_signTransaction response shape.
type signTransactionResult struct {
	Raw hexutil.Bytes `json:"raw"`
}

func (b *WalletRPCBackend) transactOpts(addr common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: addr,
		Signer: func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if from != addr {
				return nil, bind.ErrNotAuthorized
			}
			return b.signRemote(context.Background(), from, tx)
		},
	}
}

func (b *WalletRPCBackend) signRemote(ctx context.Context, from common.Address, tx *types.Transaction) (*types.Transaction, error) {
	conn, err := b.connect(ctx)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"from":  from,
		"value": (*hexutil.Big)(tx.Value()),
		"input": hexutil.Bytes(tx.Data()),
		"nonce": hexutil.Uint64(tx.Nonce()),
		"gas":   hexutil.Uint64(tx.Gas()),
	}
	if tx.To() != nil {
		args["to"] = tx.To()
	}
	if tx.GasFeeCap() != nil {
		args["maxFeePerGas"] = (*hexutil.Big)(tx.GasFeeCap())
		args["maxPriorityFeePerGas"] = (*hexutil.Big)(tx.GasTipCap())
	} else {
		args["gasPrice"] = (*hexutil.Big)(tx.GasPrice())
	}

	var res signTransactionResult
	if err := conn.CallContext(ctx, &res, "eth_signTransaction", args); err != nil {
		return nil, mapWalletError(err)
	}

	signed := new(types.Transaction)
	if err := signed.UnmarshalBinary(res.Raw); err != nil {
		return nil, fmt.Errorf("decode signed transaction: %w", err)
	}
	return signed, nil
}

// mapWalletError folds wallet-node refusals onto the user-rejection
// sentinel; everything else is a connection failure.
func mapWalletError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "denied") || strings.Contains(msg, "rejected") {
		return fmt.Errorf("%w: %v", appcommon.ErrUserRejected, err)
	}
	return fmt.Errorf("%w: %v", appcommon.ErrConnectionFailed, err)
}
