// Package models defines the client-side shapes of contract entities:
// campaigns, donations, and the per-campaign event feed. All values are
// read from the CryptoFundit contract and held transiently in memory; the
// numeric state encoding belongs to the contract and is never reinterpreted
// here.
package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CampaignState mirrors the contract's state enumeration. The numeric values
// are part of the contract ABI surface and must not change.
type CampaignState uint8

const (
	StateActive CampaignState = iota
	StatePaused
	StateEnded
	StateDeleted
)

func (s CampaignState) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	case StateEnded:
		return "Ended"
	case StateDeleted:
		return "Deleted"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the four contract-defined states.
func (s CampaignState) Valid() bool {
	return s <= StateDeleted
}

// Campaign is a single fundraising project as returned by getCampaign.
type Campaign struct {
	ID             uint64
	Owner          common.Address
	Title          string
	Description    string
	Target         *big.Int // wei
	Deadline       uint64   // unix seconds
	TotalRaised    *big.Int // wei
	CurrentBalance *big.Int // wei
	Image          string
	DonatorCount   uint64
	State          CampaignState
}

// DeadlineTime converts the unix deadline into a time.Time.
func (c *Campaign) DeadlineTime() time.Time {
	return time.Unix(int64(c.Deadline), 0)
}

// Progress returns raised/target as a percentage, capped at 100.
func (c *Campaign) Progress() float64 {
	if c.Target == nil || c.Target.Sign() == 0 || c.TotalRaised == nil {
		return 0
	}
	ratio := new(big.Float).Quo(new(big.Float).SetInt(c.TotalRaised), new(big.Float).SetInt(c.Target))
	pct, _ := ratio.Float64()
	pct *= 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// TimeRemaining renders the time left before the deadline as "3d 7h remaining",
// or "Ended" once the deadline has passed.
func (c *Campaign) TimeRemaining(now time.Time) string {
	diff := c.DeadlineTime().Sub(now)
	if diff <= 0 {
		return "Ended"
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	return fmt.Sprintf("%dd %dh remaining", days, hours)
}
