package config

import "time"

const (
	// Typing indicator refresh; Telegram clears the action after ~5s.
	TypingInterval = 4 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Ops chat log delivery timeout
	TelegramLogTimeout = 10 * time.Second

	// Rate limit burst per chat
	RateLimitBurst = 5

	// Idle per-chat limiters are dropped after this long.
	RateLimitIdleTTL = 10 * time.Minute

	// Upper bound for opening a new chat session
	SessionCreateTimeout = 30 * time.Second

	// Self-ping request timeout
	SelfPingTimeout = 15 * time.Second

	// HTTP server shutdown grace period
	ShutdownTimeout = 10 * time.Second

	// Image attachments are always uploaded with this type.
	ImageMIMEType = "image/jpeg"

	// Temp file prefix for downloaded attachments.
	TempFilePrefix = "temp_"
)
