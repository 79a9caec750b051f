package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/set-night/vetbot/internal/config"
)

// TelegramLogger mirrors notable events to an ops chat. It is a no-op when
// no chat is configured.
type TelegramLogger struct {
	client Client
	cfg    *config.Config
}

func NewTelegramLogger(c Client, cfg *config.Config) *TelegramLogger {
	return &TelegramLogger{client: c, cfg: cfg}
}

type LogType string

const (
	LogTypeError   LogType = "error"
	LogTypeSession LogType = "session"
)

func (l *TelegramLogger) Log(logType LogType, message string) {
	if l == nil || l.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := l.getTopicID(logType)
	if topicID == 0 {
		return
	}

	// Truncate if too long
	if len([]rune(message)) > config.MaxTelegramMessageLen {
		message = string([]rune(message)[:config.MaxTelegramMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.TelegramLogTimeout)
	defer cancel()

	_, err := l.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          l.cfg.LogTelegramChatID,
		Text:            message,
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (l *TelegramLogger) LogError(err error, context string) {
	msg := fmt.Sprintf("❌ Error\n\nContext: %s\nError: %s\nTime: %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	l.Log(LogTypeError, msg)
}

func (l *TelegramLogger) LogNewSession(userID int64, username string) {
	msg := fmt.Sprintf("🐾 New chat session\n\nUser: %d", userID)
	if username != "" {
		msg += fmt.Sprintf("\nUsername: @%s", username)
	}
	l.Log(LogTypeSession, msg)
}

func (l *TelegramLogger) getTopicID(logType LogType) int {
	switch logType {
	case LogTypeError:
		return l.cfg.LogTopicError
	case LogTypeSession:
		return l.cfg.LogTopicSession
	default:
		return 0
	}
}
