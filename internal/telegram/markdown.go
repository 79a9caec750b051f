package telegram

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/go-telegram/bot"
)

// SplitMessage splits a message into chunks of at most maxLen UTF-16 code
// units, the unit Telegram measures message length in, trying to split at
// newlines when possible. Runes are never cut.
func SplitMessage(text string, maxLen int) []string {
	if utf16Len(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	for text != "" {
		if utf16Len(text) <= maxLen {
			parts = append(parts, text)
			break
		}

		// Find split point
		cut, units, lastNewline := 0, 0, 0
		for cut < len(text) {
			r, size := utf8.DecodeRuneInString(text[cut:])
			n := utf16.RuneLen(r)
			if n < 0 {
				n = 1
			}
			if units+n > maxLen {
				break
			}
			units += n
			cut += size
			// Only split at a newline that keeps the chunk reasonably full
			if r == '\n' && units > maxLen/2 {
				lastNewline = cut
			}
		}
		if lastNewline > 0 {
			cut = lastNewline
		}
		if cut == 0 {
			_, cut = utf8.DecodeRuneInString(text)
		}

		parts = append(parts, text[:cut])
		text = text[cut:]
	}

	return parts
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// IsMalformedMarkup reports whether Telegram rejected a message because its
// Markdown entities could not be parsed, e.g. an unterminated "*bold".
func IsMalformedMarkup(err error) bool {
	if err == nil || !errors.Is(err, bot.ErrorBadRequest) {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "can't find end of the entity") ||
		strings.Contains(msg, "can't parse entities")
}
