package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventKind names one of the eight campaign event types emitted by the
// contract.
type EventKind string

const (
	EventCreated    EventKind = "Created"
	EventDonation   EventKind = "Donation"
	EventWithdrawal EventKind = "Withdrawal"
	EventPaused     EventKind = "Paused"
	EventResumed    EventKind = "Resumed"
	EventCompleted  EventKind = "Completed"
	EventUpdated    EventKind = "Updated"
	EventDeleted    EventKind = "Deleted"
)

// Kinds lists every campaign event kind in contract declaration order.
func Kinds() []EventKind {
	return []EventKind{
		EventCreated, EventDonation, EventWithdrawal, EventPaused,
		EventResumed, EventCompleted, EventUpdated, EventDeleted,
	}
}

// EventKey identifies an event occurrence uniquely within the chain.
type EventKey struct {
	TxHash   common.Hash
	LogIndex uint
}

// Event is the envelope shared by all feed entries. Kind-specific fields
// live in Detail.
type Event struct {
	Kind       EventKind
	CampaignID *big.Int
	TxHash     common.Hash
	Block      uint64
	LogIndex   uint

	// Live marks events delivered by the push subscription rather than
	// backfill; Received is their wall-clock receipt time.
	Live     bool
	Received time.Time

	Detail Detail
}

// Key returns the dedup key for the event.
func (e *Event) Key() EventKey {
	return EventKey{TxHash: e.TxHash, LogIndex: e.LogIndex}
}

// After reports whether e is ordered after other under the canonical
// (block, logIndex) ordering key.
func (e *Event) After(other *Event) bool {
	if e.Block != other.Block {
		return e.Block > other.Block
	}
	return e.LogIndex > other.LogIndex
}

// Detail carries the kind-specific payload of an event.
type Detail interface {
	EventKind() EventKind
}

type CreatedDetail struct {
	Owner    common.Address
	Title    string
	Target   *big.Int
	Deadline uint64
}

type DonationDetail struct {
	Donator common.Address
	Amount  *big.Int
}

type WithdrawalDetail struct {
	Owner  common.Address
	Amount *big.Int
}

type PausedDetail struct{}

type ResumedDetail struct{}

type CompletedDetail struct {
	TotalRaised *big.Int
}

type UpdatedDetail struct {
	Title       string
	Description string
	Target      *big.Int
	Deadline    uint64
	Image       string
}

type DeletedDetail struct {
	DeletedBy common.Address
}

func (CreatedDetail) EventKind() EventKind    { return EventCreated }
func (DonationDetail) EventKind() EventKind   { return EventDonation }
func (WithdrawalDetail) EventKind() EventKind { return EventWithdrawal }
func (PausedDetail) EventKind() EventKind     { return EventPaused }
func (ResumedDetail) EventKind() EventKind    { return EventResumed }
func (CompletedDetail) EventKind() EventKind  { return EventCompleted }
func (UpdatedDetail) EventKind() EventKind    { return EventUpdated }
func (DeletedDetail) EventKind() EventKind    { return EventDeleted }
