package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/set-night/vetbot/internal/config"
	"github.com/set-night/vetbot/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ChatFactory opens a new conversation seeded with the system instruction.
type ChatFactory interface {
	NewChat(ctx context.Context) (domain.ChatSession, error)
}

// SessionService owns the per-user chat sessions. Sessions live for the
// lifetime of the process.
type SessionService struct {
	factory ChatFactory

	mu       sync.RWMutex
	sessions map[int64]domain.ChatSession
	creating singleflight.Group
}

func NewSessionService(factory ChatFactory) *SessionService {
	return &SessionService{
		factory:  factory,
		sessions: make(map[int64]domain.ChatSession),
	}
}

// GetOrCreate returns the user's session, creating it on first use.
// Concurrent callers for the same user share one creation attempt; a failed
// attempt leaves the store untouched.
func (s *SessionService) GetOrCreate(ctx context.Context, userID int64) (domain.ChatSession, bool, error) {
	if session, ok := s.lookup(userID); ok {
		return session, false, nil
	}

	created := false
	v, err, _ := s.creating.Do(strconv.FormatInt(userID, 10), func() (any, error) {
		if session, ok := s.lookup(userID); ok {
			return session, nil
		}

		// Waiters share this creation; it ignores the leader's cancellation.
		createCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.SessionCreateTimeout)
		defer cancel()

		session, err := s.factory.NewChat(createCtx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSessionUnavailable, err)
		}

		s.mu.Lock()
		s.sessions[userID] = session
		s.mu.Unlock()
		created = true
		return session, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(domain.ChatSession), created, nil
}

// Len returns the number of live sessions.
func (s *SessionService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) lookup(userID int64) (domain.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}
