package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/config"
	"github.com/set-night/vetbot/internal/handler"
	"github.com/set-night/vetbot/internal/logging"
	"github.com/set-night/vetbot/internal/middleware"
	"github.com/set-night/vetbot/internal/service"
	"github.com/set-night/vetbot/internal/telegram"
	"github.com/spf13/cobra"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot (long polling)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			return runBot(ctx, cfg)
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		logging.Critical("FATAL ERROR: configuration is invalid (TELEGRAM_BOT_TOKEN and GEMINI_API_KEY are required)", "error", err)
		return nil, err
	}
	slog.SetDefault(logging.New(cfg.LogLevel))
	return cfg, nil
}

func runBot(ctx context.Context, cfg *config.Config) error {
	gemini, err := service.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logging.Critical("FATAL ERROR: failed to configure Gemini API", "error", err)
		return err
	}

	if cfg.MediaTempDir != "" {
		if err := os.MkdirAll(cfg.MediaTempDir, 0o700); err != nil {
			return fmt.Errorf("create media temp dir: %w", err)
		}
	}

	// Handler and ops logger are built after the bot; the closures below
	// only run once polling has started.
	var h *handler.Handler
	var tgLogger *telegram.TelegramLogger

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(func(err error, where string) { tgLogger.LogError(err, where) }),
			middleware.Logging(),
			middleware.RateLimit(cfg.RateLimitPerMinute),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleUpdate(ctx, b, update)
		}),
		bot.WithErrorsHandler(func(err error) {
			slog.Error("telegram transport error", "error", err)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("get bot info: %w", err)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	if cfg.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Warn("drop pending updates", "error", err)
		}
	}

	tgLogger = telegram.NewTelegramLogger(b, cfg)

	sessions := service.NewSessionService(gemini)
	media := service.NewMediaService(telegram.NewDownloader(b, nil), gemini, service.MediaOptions{
		TempDir:      cfg.MediaTempDir,
		PollInterval: cfg.MediaPollInterval,
		MaxWait:      cfg.MediaMaxWait,
	})

	h = handler.New(handler.Deps{
		Client:   b,
		Cfg:      cfg,
		Sessions: sessions,
		Media:    media,
		TgLogger: tgLogger,
	})
	h.Register(b)

	slog.Info("VetBot is starting... Polling for updates.", "username", me.Username, "model", cfg.GeminiModel)
	b.Start(ctx)

	slog.Info("bot stopped gracefully", "sessions", sessions.Len())
	return nil
}
