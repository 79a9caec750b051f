package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/middleware"
	"github.com/set-night/vetbot/internal/telegram"
)

const welcomeText = "Hello! I'm **VetBot** 🐾, your AI assistant for pet health inquiries.\n\n" +
	"You can send me:\n" +
	"📝 **Text:** Ask me any question about your pet.\n" +
	"🖼️ **Images:** Send a photo of a rash, injury, or anything you're concerned about.\n" +
	"🎤 **Audio/Voice:** Send a recording of your pet's cough, wheeze, or other sounds.\n" +
	"📹 **Videos:** Show me a clip of your pet's behavior, such as limping or seizures.\n\n" +
	"I'll do my best to provide helpful information. For a list of commands, use /help. Let's get started!"

const helpText = "**Here's how I can help:**\n\n" +
	"I can provide preliminary information and general advice about your pet's health. You can interact with me by sending:\n\n" +
	"• **Text:** Ask any question about your pet's health, behavior, or care.\n" +
	"• **Photos:** Send a picture of a concern, like a skin condition or injury.\n" +
	"• **Audio/Voice:** Record your pet's cough, wheeze, or any unusual sound.\n" +
	"• **Videos:** Show me a behavior you are worried about, like limping or a seizure.\n\n" +
	"Simply send your message or media, and I will analyze it and respond.\n\n" +
	"Use /start to see the full welcome message."

func (h *Handler) handleStart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	h.sendFixed(ctx, update, welcomeText)
}

func (h *Handler) handleHelp(ctx context.Context, _ *bot.Bot, update *models.Update) {
	h.sendFixed(ctx, update, helpText)
}

// sendFixed sends a static Markdown text. It goes through SendReply so a
// parse failure still reaches the user as plain text.
func (h *Handler) sendFixed(ctx context.Context, update *models.Update, text string) {
	if update.Message == nil {
		return
	}
	res := telegram.SendReply(ctx, h.client, update.Message.Chat.ID, text)
	if res.Outcome == telegram.RenderFailed {
		middleware.Logger(ctx).Error("send command reply", "error", res.Err)
	}
}
