package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	// Core
	BotToken     string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty" validate:"required"`
	GeminiAPIKey string `env:"GEMINI_API_KEY,required,notEmpty" validate:"required"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash" validate:"required"`

	// Media ingestion
	MediaTempDir      string        `env:"MEDIA_TEMP_DIR"`
	MediaPollInterval time.Duration `env:"MEDIA_POLL_INTERVAL" envDefault:"2s" validate:"gt=0"`
	MediaMaxWait      time.Duration `env:"MEDIA_MAX_WAIT" envDefault:"5m" validate:"gt=0"`

	// Inference
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"90s" validate:"gt=0"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
	RateLimitPerMinute int  `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20" validate:"gte=0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// Telegram logging
	LogTelegramChatID int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError     int   `env:"LOG_TOPIC_ERROR"`
	LogTopicSession   int   `env:"LOG_TOPIC_SESSION"`

	Server ServerConfig
}

// ServerConfig configures the keepalive HTTP server. It is loaded on its own
// by the keepalive command, which needs no bot credentials.
type ServerConfig struct {
	Addr             string `env:"HTTP_ADDR" envDefault:"0.0.0.0:10000" validate:"required,hostname_port"`
	RedirectURL      string `env:"REDIRECT_URL" envDefault:"https://github.com/rambo1111/Vet_Telegram_Bot/" validate:"required,url"`
	SelfPingURL      string `env:"SELF_PING_URL" validate:"omitempty,url"`
	SelfPingSchedule string `env:"SELF_PING_SCHEDULE" envDefault:"@every 10m"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse server config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate server config: %w", err)
	}
	return cfg, nil
}
