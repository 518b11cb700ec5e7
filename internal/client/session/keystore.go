package session

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/term"

	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

const KindKeystore = "keystore"

// readPassphrase is a seam for tests.
var readPassphrase = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// KeystoreBackend signs with an account from a local encrypted keystore
// directory. Connect prompts for the passphrase up front; Resume defers the
// prompt to the first signature so startup restoration stays silent.
type KeystoreBackend struct {
	ks      *keystore.KeyStore
	chainID *big.Int

	mu         sync.Mutex
	passphrase string
	havePass   bool
}

// NewKeystoreBackend opens (or creates) the keystore directory at dir.
func NewKeystoreBackend(dir string, chainID *big.Int) *KeystoreBackend {
	return &KeystoreBackend{
		ks:      keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP),
		chainID: chainID,
	}
}

func (b *KeystoreBackend) Kind() string { return KindKeystore }

func (b *KeystoreBackend) Connect(ctx context.Context) (common.Address, *bind.TransactOpts, error) {
	accs := b.ks.Accounts()
	if len(accs) == 0 {
		return common.Address{}, nil, appcommon.ErrNoWalletAvailable
	}
	account := accs[0]

	pass, err := readPassphrase(fmt.Sprintf("Passphrase for %s: ", account.Address.Hex()))
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("%w: %v", appcommon.ErrUserRejected, err)
	}

	// validate the passphrase now so a typo surfaces at connect time, not
	// on the first transaction
	if err := b.ks.Unlock(account, pass); err != nil {
		return common.Address{}, nil, fmt.Errorf("%w: %v", appcommon.ErrConnectionFailed, err)
	}

	b.mu.Lock()
	b.passphrase = pass
	b.havePass = true
	b.mu.Unlock()

	return account.Address, b.transactOpts(account), nil
}

func (b *KeystoreBackend) Resume(ctx context.Context, addr common.Address) (*bind.TransactOpts, error) {
	account, err := b.ks.Find(accounts.Account{Address: addr})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appcommon.ErrNoWalletAvailable, err)
	}
	return b.transactOpts(account), nil
}

func (b *KeystoreBackend) Terminate() error {
	b.mu.Lock()
	b.passphrase = ""
	b.havePass = false
	b.mu.Unlock()

	for _, account := range b.ks.Accounts() {
		_ = b.ks.Lock(account.Address)
	}
	return nil
}

// transactOpts builds signing options that prompt for the passphrase at
// most once across the session.
func (b *KeystoreBackend) transactOpts(account accounts.Account) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: account.Address,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != account.Address {
				return nil, bind.ErrNotAuthorized
			}
			pass, err := b.sessionPassphrase(account)
			if err != nil {
				return nil, err
			}
			return b.ks.SignTxWithPassphrase(account, pass, tx, b.chainID)
		},
	}
}

func (b *KeystoreBackend) sessionPassphrase(account accounts.Account) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.havePass {
		return b.passphrase, nil
	}
	pass, err := readPassphrase(fmt.Sprintf("Passphrase for %s: ", account.Address.Hex()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", appcommon.ErrUserRejected, err)
	}
	b.passphrase = pass
	b.havePass = true
	return pass, nil
}
