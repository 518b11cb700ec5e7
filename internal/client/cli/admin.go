package cli

import (
	"context"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
	"github.com/cryptofundit/cryptofundit-go/internal/client/services"
)

// requireAdmin checks that the connected wallet is the contract owner.
func (a *App) requireAdmin(ctx context.Context) (bool, error) {
	current := a.session.Current()
	if current == nil {
		printlnFn("No wallet connected. Use 'connect' first.")
		return false, nil
	}
	admin, err := a.campaigns.IsAdmin(ctx, current.Address)
	if err != nil {
		return false, err
	}
	if !admin {
		printlnFn("This command is limited to the contract owner.")
	}
	return admin, nil
}

// AdminList shows every campaign, deleted ones included, grouped by state.
func (a *App) AdminList(ctx context.Context) error {
	admin, err := a.requireAdmin(ctx)
	if err != nil || !admin {
		return err
	}

	all, err := a.campaigns.List(ctx)
	if err != nil {
		return err
	}

	groups := map[models.CampaignState][]*models.Campaign{}
	for _, c := range all {
		groups[c.State] = append(groups[c.State], c)
	}

	for _, state := range []models.CampaignState{
		models.StateActive, models.StatePaused, models.StateEnded, models.StateDeleted,
	} {
		campaigns := groups[state]
		if len(campaigns) == 0 {
			continue
		}
		printlnFn("== " + state.String() + " ==")
		for _, c := range campaigns {
			printlnFn(renderCampaignLine(c))
		}
	}
	if len(all) == 0 {
		printlnFn("No campaigns found.")
	}
	return nil
}

// Delete soft-deletes a campaign. The contract enforces ownership; this
// check just gives a friendlier message.
func (a *App) Delete(ctx context.Context, idArg string) error {
	admin, err := a.requireAdmin(ctx)
	if err != nil || !admin {
		return err
	}
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	return a.txCommand(ctx, "delete", func() (*services.TxResult, error) {
		return a.campaigns.Delete(ctx, id)
	})
}

// Restore brings a soft-deleted campaign back to Active.
func (a *App) Restore(ctx context.Context, idArg string) error {
	admin, err := a.requireAdmin(ctx)
	if err != nil || !admin {
		return err
	}
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	return a.txCommand(ctx, "restore", func() (*services.TxResult, error) {
		return a.campaigns.Restore(ctx, id)
	})
}
