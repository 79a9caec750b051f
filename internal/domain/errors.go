package domain

import "errors"

var (
	ErrSessionUnavailable    = errors.New("chat session unavailable")
	ErrMediaUnavailable      = errors.New("media transfer failed")
	ErrMediaProcessingFailed = errors.New("media processing failed")
	ErrMediaTimeout          = errors.New("media processing timed out")
	ErrEmptyPrompt           = errors.New("turn has no text or media")
	ErrInferenceFailed       = errors.New("inference request failed")
	ErrEmptyReply            = errors.New("model returned empty reply")
)

// IsMediaError reports whether err came from attachment ingestion.
func IsMediaError(err error) bool {
	return errors.Is(err, ErrMediaUnavailable) ||
		errors.Is(err, ErrMediaProcessingFailed) ||
		errors.Is(err, ErrMediaTimeout)
}
