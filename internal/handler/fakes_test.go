package handler

import (
	"context"
	"os"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/domain"
)

type fakeClient struct {
	mu       sync.Mutex
	sent     []*bot.SendMessageParams
	edited   []*bot.EditMessageTextParams
	sendErrs []error
}

func (c *fakeClient) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *params
	c.sent = append(c.sent, &cp)
	if len(c.sendErrs) > 0 {
		err := c.sendErrs[0]
		c.sendErrs = c.sendErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &models.Message{ID: len(c.sent)}, nil
}

func (c *fakeClient) EditMessageText(_ context.Context, params *bot.EditMessageTextParams) (*models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *params
	c.edited = append(c.edited, &cp)
	return &models.Message{ID: params.MessageID}, nil
}

func (c *fakeClient) SendChatAction(context.Context, *bot.SendChatActionParams) (bool, error) {
	return true, nil
}

func (c *fakeClient) GetFile(context.Context, *bot.GetFileParams) (*models.File, error) {
	return &models.File{}, nil
}

func (c *fakeClient) FileDownloadLink(*models.File) string { return "" }

func (c *fakeClient) sentTexts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.sent))
	for _, p := range c.sent {
		out = append(out, p.Text)
	}
	return out
}

func (c *fakeClient) sentParams() []*bot.SendMessageParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*bot.SendMessageParams(nil), c.sent...)
}

func (c *fakeClient) editedTexts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.edited))
	for _, p := range c.edited {
		out = append(out, p.Text)
	}
	return out
}

// fakeChat is a scripted inference session.
type fakeChat struct {
	mu    sync.Mutex
	calls [][]domain.PromptPart
	reply string
	err   error
}

func (c *fakeChat) SendMessage(_ context.Context, parts []domain.PromptPart) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, parts)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func (c *fakeChat) sendCalls() [][]domain.PromptPart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]domain.PromptPart(nil), c.calls...)
}

type fakeFactory struct {
	mu      sync.Mutex
	chat    *fakeChat
	created int
	errs    []error
}

func (f *fakeFactory) NewChat(context.Context) (domain.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.created++
	return f.chat, nil
}

// fakeDownloader writes fixed bytes and remembers where.
type fakeDownloader struct {
	mu    sync.Mutex
	paths []string
}

func (d *fakeDownloader) DownloadToFile(_ context.Context, _ string, path string) error {
	d.mu.Lock()
	d.paths = append(d.paths, path)
	d.mu.Unlock()
	return os.WriteFile(path, []byte("\xff\xd8\xff\xe0 fake jpeg"), 0o600)
}

func (d *fakeDownloader) lastPath() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.paths) == 0 {
		return ""
	}
	return d.paths[len(d.paths)-1]
}

// fakeFileStore reports one state on upload and another on every poll.
type fakeFileStore struct {
	uploadState domain.RemoteFileState
	pollState   domain.RemoteFileState
}

func (s *fakeFileStore) UploadFile(_ context.Context, _, mimeType string) (*domain.RemoteFile, error) {
	return &domain.RemoteFile{Name: "files/abc", URI: "https://files/abc", MIMEType: mimeType, State: s.uploadState}, nil
}

func (s *fakeFileStore) GetFile(_ context.Context, name string) (*domain.RemoteFile, error) {
	return &domain.RemoteFile{Name: name, URI: "https://files/abc", MIMEType: "image/jpeg", State: s.pollState}, nil
}
