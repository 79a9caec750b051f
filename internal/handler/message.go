package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/config"
	"github.com/set-night/vetbot/internal/domain"
	"github.com/set-night/vetbot/internal/middleware"
	"github.com/set-night/vetbot/internal/service"
	"github.com/set-night/vetbot/internal/telegram"
)

const (
	sessionUnavailableText = "Sorry, I'm having trouble connecting to my brain right now. Please try again later."
	processingFileText     = "🐾 Processing your file, please wait..."
	fileProcessedText      = "File processed! Analyzing now..."
	mediaFailedText        = "Sorry, I couldn't process your file. Please try sending it again."
	mediaTimeoutText       = "Sorry, your file took too long to process. Please try again with a shorter clip or a smaller file."
	unsupportedContentText = "Sorry, I can only process text, images, audio, and video."
	formattingFailedText   = "Sorry, I had trouble formatting my response. Please try again."
)

// handleMessage runs one turn: session, optional media, prompt, reply.
func (h *Handler) handleMessage(ctx context.Context, msg *models.Message) {
	logger := middleware.Logger(ctx)
	chatID := msg.Chat.ID
	userID, username := chatID, ""
	if msg.From != nil {
		userID, username = msg.From.ID, msg.From.Username
	}

	stopTyping := telegram.StartTyping(ctx, h.client, chatID, config.TypingInterval)
	defer stopTyping()

	session, created, err := h.sessions.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Error("get or create session", "error", err)
		h.tgLogger.LogError(err, fmt.Sprintf("create session for user %d", userID))
		h.reply(ctx, chatID, sessionUnavailableText)
		return
	}
	if created {
		logger.Info("new chat session started")
		h.tgLogger.LogNewSession(userID, username)
	}

	var file *domain.RemoteFile
	if att := telegram.AttachmentFromMessage(msg); !att.IsZero() {
		status, err := telegram.Reply(ctx, h.client, chatID, processingFileText)
		if err != nil {
			logger.Warn("send processing status", "error", err)
		}

		remote, release, err := h.media.Ingest(ctx, att)
		defer release()
		if err != nil {
			logger.Error("ingest attachment", "kind", att.Kind.String(), "error", err)
			h.tgLogger.LogError(err, "ingest "+att.Kind.String())
			h.updateStatus(ctx, chatID, status, mediaFailureText(err))
			return
		}
		file = remote
		h.updateStatus(ctx, chatID, status, fileProcessedText)
	}

	parts, err := service.AssemblePrompt(file, telegram.TextFromMessage(msg))
	if err != nil {
		logger.Info("empty prompt", "error", err)
		h.reply(ctx, chatID, unsupportedContentText)
		return
	}

	h.dispatch(ctx, chatID, session, parts)
}

// dispatch sends the prompt to the session and renders the reply.
func (h *Handler) dispatch(ctx context.Context, chatID int64, session domain.ChatSession, parts []domain.PromptPart) {
	logger := middleware.Logger(ctx)

	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if h.cfg.RequestTimeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, h.cfg.RequestTimeout)
	}
	defer cancel()

	reply, err := session.SendMessage(reqCtx, parts)
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrInferenceFailed, err)
		logger.Error("send prompt", "parts", len(parts), "error", err)
		h.tgLogger.LogError(err, "send prompt")
		h.reply(ctx, chatID, middleware.GenericFailureText)
		return
	}

	res := telegram.SendReply(ctx, h.client, chatID, reply)
	switch res.Outcome {
	case telegram.RenderOK:
		logger.Info("reply sent", "length", len(reply))
	case telegram.RenderFallback:
		logger.Warn("reply sent as plain text", "length", len(reply))
	case telegram.RenderFailed:
		logger.Error("render reply", "delivered_chunks", res.Delivered, "error", res.Err)
		// The notice only replaces a reply that never reached the user.
		if res.Delivered == 0 {
			h.reply(ctx, chatID, formattingFailedText)
		}
	}
}

func mediaFailureText(err error) string {
	if errors.Is(err, domain.ErrMediaTimeout) {
		return mediaTimeoutText
	}
	return mediaFailedText
}

// updateStatus edits the status message, or sends text as a new message
// when there is none to edit.
func (h *Handler) updateStatus(ctx context.Context, chatID int64, status *models.Message, text string) {
	if status == nil {
		h.reply(ctx, chatID, text)
		return
	}
	if err := telegram.EditText(ctx, h.client, chatID, status.ID, text); err != nil {
		middleware.Logger(ctx).Warn("edit status message", "error", err)
	}
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	if _, err := telegram.Reply(ctx, h.client, chatID, text); err != nil {
		middleware.Logger(ctx).Error("send reply", "error", err)
	}
}
