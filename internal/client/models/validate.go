package models

import (
	"math/big"
	"strings"
	"time"
)

// CampaignInput holds the create/update campaign form fields before they are
// sent to the contract.
type CampaignInput struct {
	Title       string
	Description string
	Target      *big.Int // wei
	Deadline    time.Time
	Image       string
}

// Validate checks the form fields and returns a map of field name to
// human-readable problem. An empty map means the input is acceptable.
func (in *CampaignInput) Validate(now time.Time) map[string]string {
	problems := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		problems["title"] = "Title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		problems["description"] = "Description is required"
	}
	if in.Target == nil || in.Target.Sign() <= 0 {
		problems["target"] = "Target amount must be greater than 0"
	}
	if in.Deadline.IsZero() {
		problems["deadline"] = "End date is required"
	} else if !in.Deadline.After(now) {
		problems["deadline"] = "End date must be in the future"
	}
	if in.Image == "" {
		problems["image"] = "Campaign image is required"
	}

	return problems
}

// MinDeadline returns the earliest acceptable campaign deadline: one day
// from now.
func MinDeadline(now time.Time) time.Time {
	return now.AddDate(0, 0, 1)
}
