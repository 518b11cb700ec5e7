// Package store persists the session-restoration hints between runs: the
// last-connected wallet address and backend. Nothing else is ever written
// here; campaign data always comes fresh from the contract.
package store

// Keys used by the session manager.
const (
	KeyAddress = "wallet_address"
	KeyBackend = "wallet_backend"
)

// Store is a small durable string key-value store.
type Store interface {
	// Get returns the stored value for key, or common.ErrNotFound.
	Get(key string) (string, error)

	// Set stores value under key.
	Set(key, value string) error

	// Clear removes every stored key.
	Clear() error
}
