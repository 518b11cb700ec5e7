package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
	"github.com/cryptofundit/cryptofundit-go/internal/logging"
)

// Writer is the signer-bound contract handle. Instances are created by
// Facade.Bind for exactly one session and dropped on disconnect.
type Writer struct {
	bound   *bind.BoundContract
	opts    *bind.TransactOpts
	backend bind.DeployBackend
	log     logging.Logger
}

// From returns the transacting account.
func (w *Writer) From() common.Address {
	return w.opts.From
}

// txOpts derives per-call options from the session opts. The session opts are
// never mutated; each call works on its own copy.
func (w *Writer) txOpts(ctx context.Context, value *big.Int) *bind.TransactOpts {
	o := *w.opts
	o.Context = ctx
	o.Value = value
	return &o
}

func (w *Writer) transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (*types.Transaction, error) {
	tx, err := w.bound.Transact(w.txOpts(ctx, value), method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSubmissionFailed, method, err)
	}
	w.log.Debug(ctx, "transaction submitted", "method", method, "tx", tx.Hash().Hex())
	return tx, nil
}

// CreateCampaign submits a new campaign.
func (w *Writer) CreateCampaign(ctx context.Context, in *models.CampaignInput) (*types.Transaction, error) {
	return w.transact(ctx, nil, "createCampaign",
		in.Title, in.Description, in.Target, big.NewInt(in.Deadline.Unix()), in.Image)
}

// Donate contributes amount wei to a campaign. The value rides on the
// transaction itself; donateToCampaign is payable.
func (w *Writer) Donate(ctx context.Context, id uint64, amount *big.Int) (*types.Transaction, error) {
	return w.transact(ctx, amount, "donateToCampaign", new(big.Int).SetUint64(id))
}

// Withdraw moves amount wei of the campaign balance to its owner.
func (w *Writer) Withdraw(ctx context.Context, id uint64, amount *big.Int) (*types.Transaction, error) {
	return w.transact(ctx, nil, "withdrawFunds", new(big.Int).SetUint64(id), amount)
}

// Pause suspends donations to a campaign.
func (w *Writer) Pause(ctx context.Context, id uint64) (*types.Transaction, error) {
	return w.transact(ctx, nil, "pauseCampaign", new(big.Int).SetUint64(id))
}

// Resume reactivates a paused campaign.
func (w *Writer) Resume(ctx context.Context, id uint64) (*types.Transaction, error) {
	return w.transact(ctx, nil, "resumeCampaign", new(big.Int).SetUint64(id))
}

// End closes a campaign permanently.
func (w *Writer) End(ctx context.Context, id uint64) (*types.Transaction, error) {
	return w.transact(ctx, nil, "endCampaign", new(big.Int).SetUint64(id))
}

// Delete soft-deletes a campaign (admin only).
func (w *Writer) Delete(ctx context.Context, id uint64) (*types.Transaction, error) {
	return w.transact(ctx, nil, "deleteCampaign", new(big.Int).SetUint64(id))
}

// Restore brings a deleted campaign back to Active (admin only).
func (w *Writer) Restore(ctx context.Context, id uint64) (*types.Transaction, error) {
	return w.transact(ctx, nil, "restoreCampaign", new(big.Int).SetUint64(id))
}

// Update rewrites the mutable campaign fields.
func (w *Writer) Update(ctx context.Context, id uint64, in *models.CampaignInput) (*types.Transaction, error) {
	return w.transact(ctx, nil, "updateCampaign", new(big.Int).SetUint64(id),
		in.Title, in.Description, in.Target, big.NewInt(in.Deadline.Unix()), in.Image)
}

// WaitConfirmed blocks until the transaction is mined and checks the receipt
// status. A mined-but-reverted transaction yields ErrReverted, which callers
// surface differently from a submission failure.
func (w *Writer) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, w.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", ErrReverted, tx.Hash().Hex())
	}
	return receipt, nil
}
