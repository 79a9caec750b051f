package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot and the keep-warm HTTP server together",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return runKeepalive(ctx, cfg.Server) })
			g.Go(func() error { return runBot(ctx, cfg) })
			return g.Wait()
		},
	}
}
