package session

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

// newLightKeystore uses the light scrypt parameters to keep key derivation
// fast in tests.
func newLightKeystore(t *testing.T) *KeystoreBackend {
	t.Helper()
	return &KeystoreBackend{
		ks:      keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP),
		chainID: big.NewInt(43113),
	}
}

func withPassphrase(t *testing.T, pass string) {
	t.Helper()
	orig := readPassphrase
	readPassphrase = func(prompt string) (string, error) { return pass, nil }
	t.Cleanup(func() { readPassphrase = orig })
}

func TestKeystore_Connect_Empty(t *testing.T) {
	withPassphrase(t, "pw")
	b := newLightKeystore(t)

	_, _, err := b.Connect(context.Background())
	assert.ErrorIs(t, err, appcommon.ErrNoWalletAvailable)
}

func TestKeystore_ConnectAndResume(t *testing.T) {
	withPassphrase(t, "pw")
	b := newLightKeystore(t)

	account, err := b.ks.NewAccount("pw")
	require.NoError(t, err)

	addr, opts, err := b.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, account.Address, addr)
	assert.Equal(t, account.Address, opts.From)

	opts, err = b.Resume(context.Background(), account.Address)
	require.NoError(t, err)
	assert.Equal(t, account.Address, opts.From)
}

func TestKeystore_Connect_WrongPassphrase(t *testing.T) {
	withPassphrase(t, "wrong")
	b := newLightKeystore(t)

	_, err := b.ks.NewAccount("pw")
	require.NoError(t, err)

	_, _, err = b.Connect(context.Background())
	assert.ErrorIs(t, err, appcommon.ErrConnectionFailed)
}

func TestKeystore_Resume_UnknownAccount(t *testing.T) {
	b := newLightKeystore(t)

	_, err := b.ks.NewAccount("pw")
	require.NoError(t, err)

	_, err = b.Resume(context.Background(), [20]byte{0xde, 0xad})
	assert.ErrorIs(t, err, appcommon.ErrNoWalletAvailable)
}

func TestKeystore_Terminate_DropsPassphrase(t *testing.T) {
	withPassphrase(t, "pw")
	b := newLightKeystore(t)

	_, err := b.ks.NewAccount("pw")
	require.NoError(t, err)

	_, _, err = b.Connect(context.Background())
	require.NoError(t, err)
	require.True(t, b.havePass)

	require.NoError(t, b.Terminate())
	assert.False(t, b.havePass)
	assert.Empty(t, b.passphrase)
}
