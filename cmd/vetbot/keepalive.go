package main

import (
	"context"
	"log/slog"

	"github.com/set-night/vetbot/internal/config"
	"github.com/set-night/vetbot/internal/keepalive"
	"github.com/set-night/vetbot/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newKeepaliveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keepalive",
		Short: "Run only the keep-warm HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServer()
			if err != nil {
				logging.Critical("FATAL ERROR: server configuration is invalid", "error", err)
				return err
			}
			slog.SetDefault(logging.New(cfg.LogLevel))

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			return runKeepalive(ctx, *cfg)
		},
	}
}

func runKeepalive(ctx context.Context, cfg config.ServerConfig) error {
	srv := keepalive.NewServer(cfg, keepalive.NewHandler(slog.Default(), cfg.RedirectURL))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	if cfg.SelfPingURL != "" {
		pinger := keepalive.NewPinger(cfg.SelfPingURL, cfg.SelfPingSchedule, nil)
		g.Go(func() error { return pinger.Run(ctx) })
	}
	return g.Wait()
}
