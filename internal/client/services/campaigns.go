// Package services holds the application-level operations the CLI views
// call. It composes the contract handles into whole user actions: list and
// filter campaigns, run a transaction end to end, check admin rights.
package services

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
	"github.com/cryptofundit/cryptofundit-go/internal/logging"
)

// maxConcurrentReads bounds the parallel getCampaign calls during listing
// so public RPC endpoints are not hammered.
const maxConcurrentReads = 8

// Reader is the read-only contract surface the service consumes.
type Reader interface {
	GetCampaign(ctx context.Context, id uint64) (*models.Campaign, error)
	GetDonators(ctx context.Context, id uint64) ([]models.Donation, error)
	TotalCampaigns(ctx context.Context) (uint64, error)
	IsContractOwner(ctx context.Context, addr common.Address) (bool, error)
}

// Writer is the signer-bound contract surface. The chain package's writer
// satisfies it.
type Writer interface {
	From() common.Address
	CreateCampaign(ctx context.Context, in *models.CampaignInput) (*types.Transaction, error)
	Donate(ctx context.Context, id uint64, amount *big.Int) (*types.Transaction, error)
	Withdraw(ctx context.Context, id uint64, amount *big.Int) (*types.Transaction, error)
	Pause(ctx context.Context, id uint64) (*types.Transaction, error)
	Resume(ctx context.Context, id uint64) (*types.Transaction, error)
	End(ctx context.Context, id uint64) (*types.Transaction, error)
	Delete(ctx context.Context, id uint64) (*types.Transaction, error)
	Restore(ctx context.Context, id uint64) (*types.Transaction, error)
	Update(ctx context.Context, id uint64, in *models.CampaignInput) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// SignerFunc returns the current signer-bound handle or the not-connected
// error. It is consulted per operation, never cached.
type SignerFunc func() (Writer, error)

// ValidationError reports form problems keyed by field name.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid input: " + strings.Join(fields, ", ")
}

// TxResult is the outcome of a confirmed transaction.
type TxResult struct {
	Tx          *types.Transaction
	Receipt     *types.Receipt
	ExplorerURL string
}

// Campaigns is the campaign application service.
type Campaigns struct {
	reader Reader
	signer SignerFunc
	now    func() time.Time
	log    logging.Logger
}

// NewCampaigns wires the service over the given contract surfaces.
func NewCampaigns(reader Reader, signer SignerFunc, log logging.Logger) *Campaigns {
	return &Campaigns{reader: reader, signer: signer, now: time.Now, log: log}
}

// Get loads a single campaign.
func (s *Campaigns) Get(ctx context.Context, id uint64) (*models.Campaign, error) {
	return s.reader.GetCampaign(ctx, id)
}

// Donators lists the campaign's donations in contract order.
func (s *Campaigns) Donators(ctx context.Context, id uint64) ([]models.Donation, error) {
	return s.reader.GetDonators(ctx, id)
}

// List loads every campaign, including deleted ones, ordered by id.
func (s *Campaigns) List(ctx context.Context) ([]*models.Campaign, error) {
	total, err := s.reader.TotalCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("campaign count: %w", err)
	}

	out := make([]*models.Campaign, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for id := uint64(0); id < total; id++ {
		g.Go(func() error {
			c, err := s.reader.GetCampaign(gctx, id)
			if err != nil {
				return err
			}
			out[id] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVisible loads the campaigns regular users see: everything except
// soft-deleted ones.
func (s *Campaigns) ListVisible(ctx context.Context) ([]*models.Campaign, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]*models.Campaign, 0, len(all))
	for _, c := range all {
		if c.State != models.StateDeleted {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

// ListByOwner loads the visible campaigns owned by addr.
func (s *Campaigns) ListByOwner(ctx context.Context, addr common.Address) ([]*models.Campaign, error) {
	visible, err := s.ListVisible(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]*models.Campaign, 0)
	for _, c := range visible {
		if strings.EqualFold(c.Owner.Hex(), addr.Hex()) {
			mine = append(mine, c)
		}
	}
	return mine, nil
}

// Search filters the visible campaigns by a case-insensitive match on
// title or description. An empty query returns everything visible.
func (s *Campaigns) Search(ctx context.Context, query string) ([]*models.Campaign, error) {
	visible, err := s.ListVisible(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return visible, nil
	}
	matched := make([]*models.Campaign, 0)
	for _, c := range visible {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Description), query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// IsAdmin reports whether addr is the contract owner.
func (s *Campaigns) IsAdmin(ctx context.Context, addr common.Address) (bool, error) {
	return s.reader.IsContractOwner(ctx, addr)
}

// Create validates the form and submits a new campaign.
func (s *Campaigns) Create(ctx context.Context, in *models.CampaignInput) (*TxResult, error) {
	if problems := in.Validate(s.now()); len(problems) > 0 {
		return nil, ValidationError(problems)
	}
	return s.run(ctx, func(w Writer) (*types.Transaction, error) {
		return w.CreateCampaign(ctx, in)
	})
}

// Update validates the form and rewrites the campaign's mutable fields.
func (s *Campaigns) Update(ctx context.Context, id uint64, in *models.CampaignInput) (*TxResult, error) {
	if problems := in.Validate(s.now()); len(problems) > 0 {
		return nil, ValidationError(problems)
	}
	return s.run(ctx, func(w Writer) (*types.Transaction, error) {
		return w.Update(ctx, id, in)
	})
}

// Donate contributes amount wei to the campaign.
func (s *Campaigns) Donate(ctx context.Context, id uint64, amount *big.Int) (*TxResult, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, ValidationError{"amount": "Donation amount must be greater than 0"}
	}
	return s.run(ctx, func(w Writer) (*types.Transaction, error) {
		return w.Donate(ctx, id, amount)
	})
}

// Withdraw moves amount wei of the campaign balance to its owner.
func (s *Campaigns) Withdraw(ctx context.Context, id uint64, amount *big.Int) (*TxResult, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, ValidationError{"amount": "Withdrawal amount must be greater than 0"}
	}
	return s.run(ctx, func(w Writer) (*types.Transaction, error) {
		return w.Withdraw(ctx, id, amount)
	})
}

// Pause suspends donations to the campaign.
func (s *Campaigns) Pause(ctx context.Context, id uint64) (*TxResult, error) {
	return s.run(ctx, func(w Writer) (*types.Transaction, error) { return w.Pause(ctx, id) })
}

// Resume reactivates a paused campaign.
func (s *Campaigns) Resume(ctx context.Context, id uint64) (*TxResult, error) {
	return s.run(ctx, func(w Writer) (*types.Transaction, error) { return w.Resume(ctx, id) })
}

// End closes the campaign permanently.
func (s *Campaigns) End(ctx context.Context, id uint64) (*TxResult, error) {
	return s.run(ctx, func(w Writer) (*types.Transaction, error) { return w.End(ctx, id) })
}

// Delete soft-deletes the campaign. Admin only, enforced on-chain.
func (s *Campaigns) Delete(ctx context.Context, id uint64) (*TxResult, error) {
	return s.run(ctx, func(w Writer) (*types.Transaction, error) { return w.Delete(ctx, id) })
}

// Restore brings a soft-deleted campaign back. Admin only, enforced
// on-chain.
func (s *Campaigns) Restore(ctx context.Context, id uint64) (*TxResult, error) {
	return s.run(ctx, func(w Writer) (*types.Transaction, error) { return w.Restore(ctx, id) })
}

// run executes one transaction end to end: fetch the current signer,
// submit, wait for confirmation.
func (s *Campaigns) run(ctx context.Context, submit func(Writer) (*types.Transaction, error)) (*TxResult, error) {
	w, err := s.signer()
	if err != nil {
		return nil, err
	}

	tx, err := submit(w)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "transaction submitted", "tx", tx.Hash().Hex())

	receipt, err := w.WaitConfirmed(ctx, tx)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "transaction confirmed", "tx", tx.Hash().Hex(), "block", receipt.BlockNumber)

	return &TxResult{
		Tx:          tx,
		Receipt:     receipt,
		ExplorerURL: appcommon.ExplorerTxURL(tx.Hash().Hex()),
	}, nil
}
