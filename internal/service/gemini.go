package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/set-night/vetbot/internal/domain"
	"google.golang.org/genai"
)

// GeminiService talks to the Gemini API: it opens chats for the session
// store and exposes the Files API for media ingestion.
type GeminiService struct {
	client *genai.Client
	model  string
	system string
}

func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		client: client,
		model:  model,
		system: SystemInstruction,
	}, nil
}

func (s *GeminiService) NewChat(ctx context.Context) (domain.ChatSession, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(s.system, genai.RoleUser),
	}
	chat, err := s.client.Chats.Create(ctx, s.model, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return &geminiChat{chat: chat}, nil
}

func (s *GeminiService) UploadFile(ctx context.Context, path, mimeType string) (*domain.RemoteFile, error) {
	f, err := s.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{MIMEType: mimeType})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	return toRemoteFile(f), nil
}

func (s *GeminiService) GetFile(ctx context.Context, name string) (*domain.RemoteFile, error) {
	f, err := s.client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return toRemoteFile(f), nil
}

// geminiChat serializes sends so two turns from the same user never append
// to the history concurrently. genai.Chat only records a turn in its history
// when the call succeeds, so a failed send leaves the context unchanged.
type geminiChat struct {
	mu   sync.Mutex
	chat *genai.Chat
}

func (c *geminiChat) SendMessage(ctx context.Context, parts []domain.PromptPart) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.chat.SendMessage(ctx, toGenaiParts(parts)...)
	if err != nil {
		return "", fmt.Errorf("gemini send message: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", domain.ErrEmptyReply
	}
	return text, nil
}

func toGenaiParts(parts []domain.PromptPart) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsMedia() {
			out = append(out, *genai.NewPartFromURI(p.File.URI, p.File.MIMEType))
			continue
		}
		out = append(out, *genai.NewPartFromText(p.Text))
	}
	return out
}

func toRemoteFile(f *genai.File) *domain.RemoteFile {
	return &domain.RemoteFile{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    remoteFileState(f.State),
	}
}

func remoteFileState(state genai.FileState) domain.RemoteFileState {
	switch state {
	case genai.FileStateActive:
		return domain.RemoteFileReady
	case genai.FileStateFailed:
		return domain.RemoteFileFailed
	default:
		return domain.RemoteFileProcessing
	}
}
