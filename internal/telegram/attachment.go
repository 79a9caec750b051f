package telegram

import (
	"github.com/go-telegram/bot/models"
	"github.com/set-night/vetbot/internal/domain"
)

// AttachmentFromMessage picks the one supported attachment of a message by
// priority image > video > audio > voice. Photos use the largest size.
func AttachmentFromMessage(msg *models.Message) domain.Attachment {
	switch {
	case len(msg.Photo) > 0:
		p := msg.Photo[len(msg.Photo)-1]
		return domain.Attachment{
			Kind:         domain.AttachmentImage,
			FileID:       p.FileID,
			FileUniqueID: p.FileUniqueID,
			FileSize:     int64(p.FileSize),
		}
	case msg.Video != nil:
		return domain.Attachment{
			Kind:         domain.AttachmentVideo,
			FileID:       msg.Video.FileID,
			FileUniqueID: msg.Video.FileUniqueID,
			MIMEType:     msg.Video.MimeType,
			FileSize:     int64(msg.Video.FileSize),
		}
	case msg.Audio != nil:
		return domain.Attachment{
			Kind:         domain.AttachmentAudio,
			FileID:       msg.Audio.FileID,
			FileUniqueID: msg.Audio.FileUniqueID,
			MIMEType:     msg.Audio.MimeType,
			FileSize:     int64(msg.Audio.FileSize),
		}
	case msg.Voice != nil:
		return domain.Attachment{
			Kind:         domain.AttachmentVoice,
			FileID:       msg.Voice.FileID,
			FileUniqueID: msg.Voice.FileUniqueID,
			MIMEType:     msg.Voice.MimeType,
			FileSize:     int64(msg.Voice.FileSize),
		}
	default:
		return domain.Attachment{}
	}
}

// TextFromMessage returns the message text, or the caption for media.
func TextFromMessage(msg *models.Message) string {
	if msg.Text != "" {
		return msg.Text
	}
	return msg.Caption
}

// HasUnsupportedContent reports user content the bot cannot forward.
func HasUnsupportedContent(msg *models.Message) bool {
	return msg.Document != nil ||
		msg.Sticker != nil ||
		msg.Animation != nil ||
		msg.VideoNote != nil ||
		msg.Location != nil ||
		msg.Contact != nil ||
		msg.Poll != nil ||
		msg.Dice != nil ||
		msg.Venue != nil
}
