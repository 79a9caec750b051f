package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// Logger returns the turn logger stored by Logging, or the default logger.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithLogger stores l in ctx for Logger to find.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Logging returns middleware that tags each update with a turn id and logs
// its processing time.
func Logging() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()

			updateType := "unknown"
			var chatID int64
			var userID int64

			if update.Message != nil {
				updateType = "message"
				chatID = update.Message.Chat.ID
				if update.Message.From != nil {
					userID = update.Message.From.ID
				}
			} else if update.EditedMessage != nil {
				updateType = "edited_message"
				chatID = update.EditedMessage.Chat.ID
			}

			logger := slog.Default().With(
				"turn_id", uuid.NewString(),
				"chat_id", chatID,
				"user_id", userID,
			)

			next(WithLogger(ctx, logger), b, update)

			logger.Debug("update processed",
				"type", updateType,
				"duration", time.Since(start),
			)
		}
	}
}
