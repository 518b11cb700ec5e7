package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

func renderEvent(ev *models.Event) string {
	prefix := fmt.Sprintf("[block %d] ", ev.Block)
	if ev.Live {
		prefix = "LIVE " + prefix
	}

	var body string
	switch d := ev.Detail.(type) {
	case models.CreatedDetail:
		body = fmt.Sprintf("Created %q by %s, target %s AVAX",
			d.Title, appcommon.ShortenAddress(d.Owner.Hex()), appcommon.FormatEther(d.Target))
	case models.DonationDetail:
		body = fmt.Sprintf("Donation of %s AVAX from %s",
			appcommon.FormatEther(d.Amount), appcommon.ShortenAddress(d.Donator.Hex()))
	case models.WithdrawalDetail:
		body = fmt.Sprintf("Withdrawal of %s AVAX by %s",
			appcommon.FormatEther(d.Amount), appcommon.ShortenAddress(d.Owner.Hex()))
	case models.PausedDetail:
		body = "Campaign paused"
	case models.ResumedDetail:
		body = "Campaign resumed"
	case models.CompletedDetail:
		body = fmt.Sprintf("Campaign completed, %s AVAX raised", appcommon.FormatEther(d.TotalRaised))
	case models.UpdatedDetail:
		body = fmt.Sprintf("Campaign updated: %q", d.Title)
	case models.DeletedDetail:
		body = fmt.Sprintf("Campaign deleted by %s", appcommon.ShortenAddress(d.DeletedBy.Hex()))
	default:
		body = string(ev.Kind)
	}

	return prefix + body + "  (" + appcommon.ExplorerTxURL(ev.TxHash.Hex()) + ")"
}

// Events prints a campaign's full event history, newest first.
func (a *App) Events(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}

	history, err := a.reconciler.History(ctx, new(big.Int).SetUint64(id))
	if err != nil {
		return err
	}
	if len(history) == 0 {
		printlnFn("No events yet for campaign #" + idArg + ".")
		return nil
	}
	printlnFn(fmt.Sprintf("Event history for campaign #%s (%d events, newest first):", idArg, len(history)))
	for _, ev := range history {
		printlnFn("  " + renderEvent(ev))
	}
	return nil
}

// Watch follows one campaign: it prints the reconciled history and then
// every live event as it arrives, until 'unwatch'.
func (a *App) Watch(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}

	// one watch at a time; switching campaigns drops the previous stream
	if err := a.Unwatch(ctx); err != nil {
		return err
	}

	sub, err := a.reconciler.Watch(ctx, new(big.Int).SetUint64(id))
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.watched = sub
	a.mu.Unlock()

	history := sub.Snapshot()
	if sub.LiveOnly() {
		printlnFn("History could not be loaded; showing live events only.")
	} else if len(history) == 0 {
		printlnFn("No events yet for campaign #" + idArg + ".")
	} else {
		printlnFn(fmt.Sprintf("Event history for campaign #%s (%d events, newest first):", idArg, len(history)))
		for _, ev := range history {
			printlnFn("  " + renderEvent(ev))
		}
	}
	printlnFn("Watching for live events. Type 'unwatch' to stop.")

	go func() {
		for ev := range sub.Updates() {
			printlnFn(renderEvent(ev))
		}
	}()
	return nil
}

// Unwatch stops the current live feed, if any.
func (a *App) Unwatch(ctx context.Context) error {
	a.mu.Lock()
	sub := a.watched
	a.watched = nil
	a.mu.Unlock()

	if sub == nil {
		return nil
	}
	a.reconciler.Unsubscribe(sub.ID())
	printlnFn("Stopped watching.")
	return nil
}
