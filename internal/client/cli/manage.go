package cli

import (
	"context"
	"errors"

	"github.com/cryptofundit/cryptofundit-go/internal/client/services"
	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

// txCommand runs one transactional command end to end and prints the
// outcome, translating the well-known failures into plain messages.
func (a *App) txCommand(ctx context.Context, verb string, run func() (*services.TxResult, error)) error {
	if !a.isConnected() {
		printlnFn("No wallet connected. Use 'connect' first.")
		return nil
	}

	printlnFn("Submitting transaction, waiting for confirmation...")
	res, err := run()

	var verr services.ValidationError
	switch {
	case errors.As(err, &verr):
		printlnFn("Please fix the following:")
		printValidation(verr)
		return nil
	case errors.Is(err, appcommon.ErrReverted):
		printlnFn("The contract rejected this " + verb + ". Check the campaign state and your permissions.")
		return err
	case err != nil:
		return err
	}

	printlnFn("Done.")
	printlnFn("Transaction: " + res.ExplorerURL)
	return nil
}

// Donate contributes AVAX to a campaign.
func (a *App) Donate(ctx context.Context, idArg, amountArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	amount, err := parseAmount(amountArg)
	if err != nil {
		return err
	}
	return a.txCommand(ctx, "donation", func() (*services.TxResult, error) {
		return a.campaigns.Donate(ctx, id, amount)
	})
}

// Withdraw moves raised funds to the campaign owner.
func (a *App) Withdraw(ctx context.Context, idArg, amountArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	amount, err := parseAmount(amountArg)
	if err != nil {
		return err
	}
	return a.txCommand(ctx, "withdrawal", func() (*services.TxResult, error) {
		return a.campaigns.Withdraw(ctx, id, amount)
	})
}

// Pause suspends donations to a campaign.
func (a *App) Pause(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	return a.txCommand(ctx, "pause", func() (*services.TxResult, error) {
		return a.campaigns.Pause(ctx, id)
	})
}

// Resume reactivates a paused campaign.
func (a *App) Resume(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	return a.txCommand(ctx, "resume", func() (*services.TxResult, error) {
		return a.campaigns.Resume(ctx, id)
	})
}

// End closes a campaign permanently.
func (a *App) End(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	return a.txCommand(ctx, "end", func() (*services.TxResult, error) {
		return a.campaigns.End(ctx, id)
	})
}
