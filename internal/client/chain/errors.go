package chain

import (
	"errors"

	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

var (
	// ErrNotConnected is returned when a signer-bound operation is requested
	// while no wallet session is active. Same value as the shared sentinel,
	// so callers can match either name with errors.Is.
	ErrNotConnected = appcommon.ErrNotConnected

	// ErrReverted marks a transaction that was mined but reverted on-chain.
	ErrReverted = appcommon.ErrReverted

	// ErrSubmissionFailed marks a transaction that was never accepted by the
	// network.
	ErrSubmissionFailed = errors.New("transaction submission failed")

	// ErrUnknownEvent is returned for logs whose topic does not match any
	// campaign event.
	ErrUnknownEvent = errors.New("unknown contract event")
)
