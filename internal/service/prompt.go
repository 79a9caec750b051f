package service

import (
	"strings"

	"github.com/set-night/vetbot/internal/domain"
)

// AssemblePrompt orders the turn's parts: media reference first, then text.
func AssemblePrompt(file *domain.RemoteFile, text string) ([]domain.PromptPart, error) {
	var parts []domain.PromptPart
	if file != nil {
		parts = append(parts, domain.PromptPart{File: file})
	}
	if strings.TrimSpace(text) != "" {
		parts = append(parts, domain.PromptPart{Text: text})
	}
	if len(parts) == 0 {
		return nil, domain.ErrEmptyPrompt
	}
	return parts, nil
}
