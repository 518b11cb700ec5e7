package cli

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cryptofundit/cryptofundit-go/internal/filex"
	"github.com/cryptofundit/cryptofundit-go/internal/netx"
)

const downloadDir = "downloads"

// Image downloads a campaign's image into the local downloads directory.
func (a *App) Image(ctx context.Context, idArg string) error {
	id, err := parseCampaignID(idArg)
	if err != nil {
		return err
	}

	c, err := a.campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.Image == "" || !strings.HasPrefix(c.Image, "http") {
		printlnFn("Campaign #" + idArg + " has no downloadable image.")
		return nil
	}

	data, err := netx.Download(ctx, c.Image)
	if err != nil {
		return fmt.Errorf("download image: %w", err)
	}

	dir, err := filex.EnsureSubDir(downloadDir)
	if err != nil {
		return err
	}

	ext := path.Ext(c.Image)
	if ext == "" {
		ext = ".img"
	}
	target := filepath.Join(dir, fmt.Sprintf("campaign-%d%s", id, ext))
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("save image: %w", err)
	}

	printlnFn("Saved to " + target)
	return nil
}
