package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/cryptofundit/cryptofundit-go/internal/common"
)

// parseCampaignID parses a campaign id argument.
func parseCampaignID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid campaign id %q", s)
	}
	return id, nil
}

// parseAmount converts a decimal AVAX amount into wei.
func parseAmount(s string) (*big.Int, error) {
	wei, err := common.ParseEther(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return wei, nil
}

// parseDeadline parses a campaign end date in YYYY-MM-DD form, interpreted
// in local time at end of day.
func parseDeadline(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d.Add(24*time.Hour - time.Second), nil
}
