package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/config"
	"github.com/set-night/vetbot/internal/telegram"
	"golang.org/x/time/rate"
)

const rateLimitedText = "⏳ Too many messages. Please wait a moment."

// ChatLimiter keeps one token bucket per chat. Buckets idle for longer than
// the TTL are dropped.
type ChatLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu        sync.Mutex
	chats     map[int64]*chatBucket
	lastSweep time.Time
}

type chatBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewChatLimiter(perMinute, burst int, idleTTL time.Duration) *ChatLimiter {
	return &ChatLimiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		idleTTL: idleTTL,
		chats:   make(map[int64]*chatBucket),
	}
}

// Allow reports whether the chat may start another turn at now.
func (l *ChatLimiter) Allow(chatID int64, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.idleTTL {
		for id, c := range l.chats {
			if now.Sub(c.lastSeen) > l.idleTTL {
				delete(l.chats, id)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.chats[chatID]
	if !ok {
		c = &chatBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.chats[chatID] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked chats.
func (l *ChatLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.chats)
}

// RateLimit returns middleware that enforces a per-chat message rate.
// perMinute == 0 disables it.
func RateLimit(perMinute int) bot.Middleware {
	if perMinute <= 0 {
		return func(next bot.HandlerFunc) bot.HandlerFunc { return next }
	}
	limiter := NewChatLimiter(perMinute, config.RateLimitBurst, config.RateLimitIdleTTL)

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			// Only rate limit messages
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if !limiter.Allow(chatID, time.Now()) {
				Logger(ctx).Debug("rate limited", "limit_per_minute", perMinute)
				if b != nil {
					if _, err := telegram.Reply(ctx, b, chatID, rateLimitedText); err != nil {
						slog.Error("send rate limit notice", "chat_id", chatID, "error", err)
					}
				}
				return
			}

			next(ctx, b, update)
		}
	}
}
