// Package session manages the wallet connection lifecycle: connect,
// silent restore on startup, and disconnect. A session is Connected or
// Disconnected; there is no half-open state. The manager owns the
// persisted restoration hints and keeps the contract facade's signer
// handle in lockstep with the session.
package session

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ErrUnknownBackend is returned by Connect for a backend kind the manager
// was not configured with.
var ErrUnknownBackend = errors.New("unknown wallet backend")

// Backend is one way of obtaining a signing account. Implementations map
// their own failures onto the common sentinel errors: no account material
// at all is ErrNoWalletAvailable, an explicit refusal is ErrUserRejected,
// anything else is ErrConnectionFailed.
type Backend interface {
	// Kind names the backend in the persisted restoration hints.
	Kind() string

	// Connect interactively establishes a session and returns the selected
	// account with transaction options signing through this backend.
	Connect(ctx context.Context) (common.Address, *bind.TransactOpts, error)

	// Resume re-establishes a previous session for addr without user
	// interaction. It fails rather than prompts.
	Resume(ctx context.Context, addr common.Address) (*bind.TransactOpts, error)

	// Terminate releases whatever the backend holds for the session. Safe
	// to call when nothing is held.
	Terminate() error
}
