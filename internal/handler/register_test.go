package handler

import (
	"context"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandUpdate(text string, commandLen int) *models.Update {
	u := textUpdate(text)
	u.Message.Entities = []models.MessageEntity{
		{Type: models.MessageEntityTypeBotCommand, Offset: 0, Length: commandLen},
	}
	return u
}

func TestRegisterMatchesWholeCommandsOnly(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	fallthroughs := make(chan struct{}, 4)
	b, err := bot.New("123:test-token",
		bot.WithSkipGetMe(),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			env.h.HandleUpdate(ctx, b, update)
			fallthroughs <- struct{}{}
		}),
	)
	require.NoError(t, err)
	env.h.Register(b)

	b.ProcessUpdate(context.Background(), commandUpdate("/startle", 8))
	b.ProcessUpdate(context.Background(), commandUpdate("/helpful tips", 8))
	for range 2 {
		select {
		case <-fallthroughs:
		case <-time.After(time.Second):
			t.Fatal("update was not routed to the default handler")
		}
	}
	assert.Empty(t, env.client.sentTexts())

	b.ProcessUpdate(context.Background(), commandUpdate("/start", 6))
	b.ProcessUpdate(context.Background(), commandUpdate("/help", 5))
	assert.Eventually(t, func() bool { return len(env.client.sentTexts()) == 2 }, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []string{welcomeText, helpText}, env.client.sentTexts())
	assert.Zero(t, env.sessions.Len())
}
