package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/cryptofundit/cryptofundit-go/internal/buildinfo"
	"github.com/cryptofundit/cryptofundit-go/internal/client/cli"
	"github.com/cryptofundit/cryptofundit-go/internal/client/config"
	"github.com/cryptofundit/cryptofundit-go/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// optional; the pinning token usually lives here
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
