package handler

import (
	"context"

	"github.com/set-night/vetbot/internal/config"
	"github.com/set-night/vetbot/internal/domain"
	"github.com/set-night/vetbot/internal/telegram"
)

// SessionStore hands out the per-user chat session.
type SessionStore interface {
	GetOrCreate(ctx context.Context, userID int64) (domain.ChatSession, bool, error)
}

// MediaIngestor turns a transport attachment into a ready remote file.
type MediaIngestor interface {
	Ingest(ctx context.Context, att domain.Attachment) (*domain.RemoteFile, func(), error)
}

// Handler holds all dependencies needed by command and message handlers.
type Handler struct {
	client   telegram.Client
	cfg      *config.Config
	sessions SessionStore
	media    MediaIngestor
	tgLogger *telegram.TelegramLogger
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Client   telegram.Client
	Cfg      *config.Config
	Sessions SessionStore
	Media    MediaIngestor
	TgLogger *telegram.TelegramLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		client:   deps.Client,
		cfg:      deps.Cfg,
		sessions: deps.Sessions,
		media:    deps.Media,
		tgLogger: deps.TgLogger,
	}
}
