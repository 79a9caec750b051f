package telegram

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type fakeClient struct {
	mu       sync.Mutex
	sent     []*bot.SendMessageParams
	edited   []*bot.EditMessageTextParams
	actions  int
	sendErrs []error // consumed per SendMessage call
	fileURL  string
	getErr   error
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
	return &models.Message{ID: len(c.sent), Text: params.Text}, nil
}

func (c *fakeClient) EditMessageText(_ context.Context, params *bot.EditMessageTextParams) (*models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edited = append(c.edited, params)
	return &models.Message{ID: params.MessageID, Text: params.Text}, nil
}

func (c *fakeClient) SendChatAction(context.Context, *bot.SendChatActionParams) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions++
	return true, nil
}

func (c *fakeClient) GetFile(_ context.Context, params *bot.GetFileParams) (*models.File, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return &models.File{FileID: params.FileID, FilePath: "photos/file_1.jpg"}, nil
}

func (c *fakeClient) FileDownloadLink(f *models.File) string {
	return c.fileURL + "/" + f.FilePath
}

func (c *fakeClient) sentParams() []*bot.SendMessageParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*bot.SendMessageParams(nil), c.sent...)
}

func (c *fakeClient) actionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.actions
}
