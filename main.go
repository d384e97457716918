package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/lalitmohan/portfolio/internal/assets"
	"github.com/lalitmohan/portfolio/internal/config"
	"github.com/lalitmohan/portfolio/internal/content"
	"github.com/lalitmohan/portfolio/internal/logging"
	"github.com/lalitmohan/portfolio/internal/server"
	"github.com/lalitmohan/portfolio/internal/snapshot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		logger := logging.Base()
		logger.Fatal().Err(err).Msg("portfolio exited")
	}
}

// run serves until ctx is cancelled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		logging.Configure(logging.Config{})
		return err
	}
	logging.Configure(logging.Config{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})
	logger := logging.WithComponent("main")

	site, err := content.Load()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, site)
	if err != nil {
		return err
	}

	ctx = logger.WithContext(ctx)

	// Static export for hosting without this binary
	if cfg.SnapshotDir != "" {
		if _, err := snapshot.Write(ctx, cfg.SnapshotDir, srv.Page(), assets.FS(),
			snapshot.File{Path: "robots.txt", Data: []byte(srv.Robots())},
			snapshot.File{Path: "sitemap.xml", Data: srv.Sitemap()},
		); err != nil {
			return err
		}
	}

	logger.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("starting portfolio")
	return srv.Run(ctx)
}
