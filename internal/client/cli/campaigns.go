package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
	appcommon "github.com/cryptofundit/cryptofundit-go/internal/common"
)

func renderCampaignLine(c *models.Campaign) string {
	return fmt.Sprintf("#%d  %-30.30s  %s/%s AVAX  %.0f%%  %s  [%s]",
		c.ID, c.Title,
		appcommon.FormatEther(c.TotalRaised), appcommon.FormatEther(c.Target),
		c.Progress(), c.TimeRemaining(time.Now()), c.State)
}

func renderCampaignDetails(c *models.Campaign) string {
	return fmt.Sprintf(`Campaign #%d: %s
  Owner:      %s
  State:      %s
  Target:     %s AVAX
  Raised:     %s AVAX (%.1f%%)
  Balance:    %s AVAX
  Deadline:   %s (%s)
  Donators:   %d
  Image:      %s

%s`,
		c.ID, c.Title,
		c.Owner.Hex(),
		c.State,
		appcommon.FormatEther(c.Target),
		appcommon.FormatEther(c.TotalRaised), c.Progress(),
		appcommon.FormatEther(c.CurrentBalance),
		c.DeadlineTime().Format("2006-01-02 15:04 MST"), c.TimeRemaining(time.Now()),
		c.DonatorCount,
		c.Image,
		c.Description)
}

func printCampaigns(campaigns []*models.Campaign) {
	if len(campaigns) == 0 {
		printlnFn("No campaigns found.")
		return
	}
	for _, c := range campaigns {
		printlnFn(renderCampaignLine(c))
	}
}

// List shows the visible campaigns.
func (a *App) List(ctx context.Context) error {
	campaigns, err := a.campaigns.ListVisible(ctx)
	if err != nil {
		return err
	}
	printCampaigns(campaigns)
	return nil
}

// Mine shows the campaigns owned by the connected wallet.
func (a *App) Mine(ctx context.Context) error {
	current := a.session.Current()
	if current == nil {
		printlnFn("No wallet connected. Use 'connect' first.")
		return nil
	}
	campaigns, err := a.campaigns.ListByOwner(ctx, current.Address)
	if err != nil {
		return err
	}
	printCampaigns(campaigns)
	return nil
}

// Search filters visible campaigns by title or description.
func (a *App) Search(ctx context.Context, query string) error {
	campaigns, err := a.campaigns.Search(ctx, query)
	if err != nil {
		return err
	}
	printCampaigns(campaigns)
	return nil
}

// Show prints one campaign in full.
func (a *App) Show(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	c, err := a.campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(renderCampaignDetails(c))
	return nil
}

// Donators lists a campaign's donations in contract order.
func (a *App) Donators(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}
	donations, err := a.campaigns.Donators(ctx, id)
	if err != nil {
		return err
	}
	if len(donations) == 0 {
		printlnFn("No donations yet.")
		return nil
	}
	for i, d := range donations {
		printlnFn(fmt.Sprintf("%3d. %s  %s AVAX", i+1,
			appcommon.ShortenAddress(d.Donator.Hex()), appcommon.FormatEther(d.Amount)))
	}
	return nil
}
