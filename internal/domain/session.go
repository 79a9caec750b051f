package domain

import "context"

// ChatSession is an ongoing conversation with the inference service. Sending
// a prompt extends its history and returns the generated reply text.
type ChatSession interface {
	SendMessage(ctx context.Context, parts []PromptPart) (string, error)
}
