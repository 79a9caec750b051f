package domain

// AttachmentKind is the single media slot of a turn, in selection priority
// order: image > video > audio > voice.
type AttachmentKind int

const (
	AttachmentNone AttachmentKind = iota
	AttachmentImage
	AttachmentVideo
	AttachmentAudio
	AttachmentVoice
)

func (k AttachmentKind) String() string {
	switch k {
	case AttachmentImage:
		return "image"
	case AttachmentVideo:
		return "video"
	case AttachmentAudio:
		return "audio"
	case AttachmentVoice:
		return "voice"
	default:
		return "none"
	}
}

// Attachment is the media carried by one turn, resolved once from the
// inbound message.
type Attachment struct {
	Kind         AttachmentKind
	FileID       string
	FileUniqueID string
	MIMEType     string // declared by the transport, may be empty
	FileSize     int64
}

func (a Attachment) IsZero() bool {
	return a.Kind == AttachmentNone
}
