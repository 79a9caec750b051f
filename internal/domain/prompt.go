package domain

// PromptPart is one element of a multimodal prompt. Exactly one of File or
// Text is set.
type PromptPart struct {
	File *RemoteFile
	Text string
}

func (p PromptPart) IsMedia() bool {
	return p.File != nil
}
