package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
)

// Reader is the read-only contract handle. It never signs and is independent
// of the wallet session.
type Reader struct {
	bound *bind.BoundContract
}

// NewReader wraps an already-bound contract. Used by the facade and by tests.
func NewReader(bound *bind.BoundContract) *Reader {
	return &Reader{bound: bound}
}

// GetCampaign fetches one campaign record by id.
func (r *Reader) GetCampaign(ctx context.Context, id uint64) (*models.Campaign, error) {
	var out []interface{}
	err := r.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getCampaign", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("getCampaign(%d): %w", id, err)
	}

	c := &models.Campaign{
		ID:             id,
		Owner:          *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		Title:          *abi.ConvertType(out[1], new(string)).(*string),
		Description:    *abi.ConvertType(out[2], new(string)).(*string),
		Target:         *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		Deadline:       (*abi.ConvertType(out[4], new(*big.Int)).(**big.Int)).Uint64(),
		TotalRaised:    *abi.ConvertType(out[5], new(*big.Int)).(**big.Int),
		CurrentBalance: *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
		Image:          *abi.ConvertType(out[7], new(string)).(*string),
		DonatorCount:   (*abi.ConvertType(out[8], new(*big.Int)).(**big.Int)).Uint64(),
		State:          models.CampaignState(*abi.ConvertType(out[9], new(uint8)).(*uint8)),
	}
	return c, nil
}

// GetDonators fetches the donation list for a campaign, in contract order.
func (r *Reader) GetDonators(ctx context.Context, id uint64) ([]models.Donation, error) {
	var out []interface{}
	err := r.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getDonators", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("getDonators(%d): %w", id, err)
	}

	addrs := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)
	amounts := *abi.ConvertType(out[1], new([]*big.Int)).(*[]*big.Int)
	if len(addrs) != len(amounts) {
		return nil, fmt.Errorf("getDonators(%d): %d addresses vs %d amounts", id, len(addrs), len(amounts))
	}

	donations := make([]models.Donation, 0, len(addrs))
	for i, a := range addrs {
		donations = append(donations, models.Donation{Donator: a, Amount: amounts[i]})
	}
	return donations, nil
}

// TotalCampaigns returns the number of campaigns ever created, which is also
// the exclusive upper bound of valid campaign ids.
func (r *Reader) TotalCampaigns(ctx context.Context) (uint64, error) {
	var out []interface{}
	err := r.bound.Call(&bind.CallOpts{Context: ctx}, &out, "totalCampaigns")
	if err != nil {
		return 0, fmt.Errorf("totalCampaigns: %w", err)
	}
	return (*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)).Uint64(), nil
}

// IsContractOwner reports whether account is the contract administrator.
func (r *Reader) IsContractOwner(ctx context.Context, account common.Address) (bool, error) {
	var out []interface{}
	err := r.bound.Call(&bind.CallOpts{Context: ctx}, &out, "isContractOwner", account)
	if err != nil {
		return false, fmt.Errorf("isContractOwner: %w", err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}
