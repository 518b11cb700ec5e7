package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cryptofundit/cryptofundit-go/internal/client/models"
	"github.com/cryptofundit/cryptofundit-go/internal/client/services"
)

// promptCampaignInput walks the user through the campaign form.
func (a *App) promptCampaignInput(ctx context.Context) (*models.CampaignInput, error) {
	title, err := GetSimpleText(a.reader, "Campaign title", os.Stdout)
	if err != nil {
		return nil, err
	}

	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return nil, err
	}

	targetRaw, err := GetSimpleText(a.reader, "Target amount (AVAX)", os.Stdout)
	if err != nil {
		return nil, err
	}
	target, err := parseAmount(targetRaw)
	if err != nil {
		return nil, err
	}

	minDate := models.MinDeadline(time.Now()).Format("2006-01-02")
	deadlineRaw, err := GetSimpleText(a.reader, "End date (YYYY-MM-DD, earliest "+minDate+")", os.Stdout)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDeadline(deadlineRaw)
	if err != nil {
		return nil, err
	}

	image, err := a.promptImage(ctx)
	if err != nil {
		return nil, err
	}

	return &models.CampaignInput{
		Title:       title,
		Description: description,
		Target:      target,
		Deadline:    deadline,
		Image:       image,
	}, nil
}

// promptImage asks for a campaign image. A local file is pinned to IPFS
// and replaced by its gateway URL; anything else is taken as a URL.
func (a *App) promptImage(ctx context.Context) (string, error) {
	raw, err := GetSimpleText(a.reader, "Image (local file to pin, or URL)", os.Stdout)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "ipfs://") {
		return raw, nil
	}
	if _, statErr := os.Stat(raw); statErr != nil {
		return raw, nil
	}

	printlnFn("Pinning image to IPFS...")
	url, err := a.pinner.PinFile(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("pin image: %w", err)
	}
	printlnFn("Pinned: " + url)
	return url, nil
}

func printValidation(verr services.ValidationError) {
	fields := make([]string, 0, len(verr))
	for f := range verr {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		printlnFn("  - " + verr[f])
	}
}

// Create walks the user through a new campaign and submits it.
func (a *App) Create(ctx context.Context) error {
	if !a.isConnected() {
		printlnFn("No wallet connected. Use 'connect' first.")
		return nil
	}

	in, err := a.promptCampaignInput(ctx)
	if err != nil {
		return err
	}

	printlnFn("Submitting campaign, waiting for confirmation...")
	res, err := a.campaigns.Create(ctx, in)
	var verr services.ValidationError
	if errors.As(err, &verr) {
		printlnFn("Please fix the following:")
		printValidation(verr)
		return nil
	}
	if err != nil {
		return err
	}

	printlnFn("Campaign created.")
	printlnFn("Transaction: " + res.ExplorerURL)
	return nil
}

// Update edits an existing campaign's mutable fields.
func (a *App) Update(ctx context.Context, idArg string) error {
	if !a.isConnected() {
		printlnFn("No wallet connected. Use 'connect' first.")
		return nil
	}
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}

	current, err := a.campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	printlnFn("Editing campaign #" + fmt.Sprint(id) + " (" + current.Title + ")")

	in, err := a.promptCampaignInput(ctx)
	if err != nil {
		return err
	}

	printlnFn("Submitting update, waiting for confirmation...")
	res, err := a.campaigns.Update(ctx, id, in)
	var verr services.ValidationError
	if errors.As(err, &verr) {
		printlnFn("Please fix the following:")
		printValidation(verr)
		return nil
	}
	if err != nil {
		return err
	}

	printlnFn("Campaign updated.")
	printlnFn("Transaction: " + res.ExplorerURL)
	return nil
}
