package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/config"
)

// RenderOutcome is the result of delivering a generated reply.
type RenderOutcome int

const (
	// RenderOK means every chunk was delivered with Markdown.
	RenderOK RenderOutcome = iota
	// RenderFallback means at least one chunk had malformed Markdown and was
	// delivered as plain text instead.
	RenderFallback
	// RenderFailed means a chunk could not be delivered at all.
	RenderFailed
)

func (o RenderOutcome) String() string {
	switch o {
	case RenderOK:
		return "ok"
	case RenderFallback:
		return "fallback"
	default:
		return "failed"
	}
}

type RenderResult struct {
	Outcome RenderOutcome
	Err     error
	// Delivered counts the chunks the user received before any failure.
	Delivered int
}

// SendReply delivers text with Markdown formatting, splitting it when it
// exceeds the Telegram limit. A chunk rejected for malformed Markdown is
// resent once as plain text; any other failure stops delivery.
func SendReply(ctx context.Context, c Client, chatID int64, text string) RenderResult {
	result := RenderResult{Outcome: RenderOK}

	for _, part := range SplitMessage(text, config.MaxTelegramMessageLen) {
		params := &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      part,
			ParseMode: models.ParseModeMarkdownV1,
		}

		_, err := c.SendMessage(ctx, params)
		if err == nil {
			result.Delivered++
			continue
		}
		if !IsMalformedMarkup(err) {
			return RenderResult{Outcome: RenderFailed, Err: fmt.Errorf("send reply: %w", err), Delivered: result.Delivered}
		}

		slog.Warn("bad markdown from model, sending as plain text", "chat_id", chatID, "error", err)
		params.ParseMode = ""
		if _, err := c.SendMessage(ctx, params); err != nil {
			return RenderResult{Outcome: RenderFailed, Err: fmt.Errorf("send plain reply: %w", err), Delivered: result.Delivered}
		}
		result.Delivered++
		result.Outcome = RenderFallback
	}

	return result
}

// Reply sends a fixed plain-text message.
func Reply(ctx context.Context, c Client, chatID int64, text string) (*models.Message, error) {
	return c.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

// ReplyMarkdown sends a fixed message authored in Markdown.
func ReplyMarkdown(ctx context.Context, c Client, chatID int64, text string) (*models.Message, error) {
	return c.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
}

// EditText replaces the text of a previously sent message.
func EditText(ctx context.Context, c Client, chatID int64, messageID int, text string) error {
	_, err := c.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	})
	return err
}

// StartTyping sends the "typing..." action every interval until the returned
// cancel function is called.
func StartTyping(ctx context.Context, c Client, chatID int64, interval time.Duration) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			if _, err := c.SendChatAction(ctx, &bot.SendChatActionParams{
				ChatID: chatID,
				Action: models.ChatActionTyping,
			}); err != nil && ctx.Err() == nil {
				slog.Debug("send typing action", "chat_id", chatID, "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return cancel
}
