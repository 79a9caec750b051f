package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/middleware"
	"github.com/set-night/vetbot/internal/telegram"
)

// Register registers the command handlers on the bot instance. Every other
// update reaches HandleUpdate through the bot's default handler.
func (h *Handler) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "start", bot.MatchTypeCommandStartOnly, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "help", bot.MatchTypeCommandStartOnly, h.handleHelp)
}

type updateKind int

const (
	updateIgnored updateKind = iota
	updateContent
	updateUnsupported
)

func classify(msg *models.Message) updateKind {
	if msg == nil {
		return updateIgnored
	}
	if !telegram.AttachmentFromMessage(msg).IsZero() {
		return updateContent
	}
	if strings.HasPrefix(msg.Text, "/") {
		// unknown command
		return updateIgnored
	}
	if telegram.HasUnsupportedContent(msg) {
		return updateUnsupported
	}
	if strings.TrimSpace(telegram.TextFromMessage(msg)) != "" {
		return updateContent
	}
	return updateIgnored
}

// HandleUpdate routes updates not claimed by a command handler.
func (h *Handler) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg := update.Message

	switch classify(msg) {
	case updateContent:
		h.handleMessage(ctx, msg)
	case updateUnsupported:
		middleware.Logger(ctx).Info("unsupported content rejected")
		h.reply(ctx, msg.Chat.ID, unsupportedContentText)
	default:
		middleware.Logger(ctx).Debug("update ignored", "update_id", update.ID)
	}
}
