package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/telegram"
)

// GenericFailureText is shown to the user for any fault without a more
// specific message.
const GenericFailureText = "Sorry, an unexpected error occurred. Please try again."

// ErrorReporter mirrors a fault somewhere outside the process log.
type ErrorReporter func(err error, context string)

// Recover returns middleware that recovers from panics. It is registered
// first so it wraps every other middleware and handler. report may be nil.
func Recover(report ErrorReporter) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				slog.Error("panic recovered in handler",
					"panic", r,
					"update_id", update.ID,
					"stack", string(debug.Stack()),
				)
				if report != nil {
					report(fmt.Errorf("panic: %v", r), "handle update")
				}

				if b != nil && update.Message != nil {
					if _, err := telegram.Reply(ctx, b, update.Message.Chat.ID, GenericFailureText); err != nil {
						slog.Error("send failure notice", "chat_id", update.Message.Chat.ID, "error", err)
					}
				}
			}()
			next(ctx, b, update)
		}
	}
}
