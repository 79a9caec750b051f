package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/set-night/vetbot/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vetbot",
		Short:         "VetBot: AI assistant for pet health questions on Telegram",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// Replaced by the configured level once config is loaded.
			slog.SetDefault(logging.New(os.Getenv("LOG_LEVEL")))
		},
	}

	rootCmd.AddCommand(
		newBotCmd(),
		newKeepaliveCmd(),
		newServeCmd(),
	)

	return rootCmd
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
