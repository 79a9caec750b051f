package domain

// RemoteFileState tracks an uploaded attachment on the inference side.
type RemoteFileState string

const (
	RemoteFileProcessing RemoteFileState = "PROCESSING"
	RemoteFileReady      RemoteFileState = "READY"
	RemoteFileFailed     RemoteFileState = "FAILED"
)

// RemoteFile is the handle returned by the inference service's file API.
type RemoteFile struct {
	Name     string
	URI      string
	MIMEType string
	State    RemoteFileState
}

func (f *RemoteFile) IsTerminal() bool {
	return f.State == RemoteFileReady || f.State == RemoteFileFailed
}
