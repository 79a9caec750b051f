package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/set-night/vetbot/internal/config"
	"github.com/set-night/vetbot/internal/domain"
)

// FileDownloader fetches a transport attachment into a local file.
type FileDownloader interface {
	DownloadToFile(ctx context.Context, fileID, path string) error
}

// FileStore is the inference service's file API.
type FileStore interface {
	UploadFile(ctx context.Context, path, mimeType string) (*domain.RemoteFile, error)
	GetFile(ctx context.Context, name string) (*domain.RemoteFile, error)
}

type MediaService struct {
	downloader   FileDownloader
	files        FileStore
	tempDir      string
	pollInterval time.Duration
	maxWait      time.Duration
}

type MediaOptions struct {
	TempDir      string
	PollInterval time.Duration
	MaxWait      time.Duration
}

func NewMediaService(downloader FileDownloader, files FileStore, opts MediaOptions) *MediaService {
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	return &MediaService{
		downloader:   downloader,
		files:        files,
		tempDir:      opts.TempDir,
		pollInterval: opts.PollInterval,
		maxWait:      opts.MaxWait,
	}
}

// Ingest downloads the attachment, uploads it to the inference service and
// waits until the remote copy is ready. The returned release func is never
// nil and removes the local transient copy; callers must defer it even when
// err != nil.
func (s *MediaService) Ingest(ctx context.Context, att domain.Attachment) (*domain.RemoteFile, func(), error) {
	path, err := s.createTempFile(att)
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: %w", domain.ErrMediaUnavailable, err)
	}
	release := func() {
		if err := os.Remove(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Warn("remove temp file", "path", path, "error", err)
			}
			return
		}
		slog.Info("cleaned up temporary file", "path", path)
	}

	if err := s.downloader.DownloadToFile(ctx, att.FileID, path); err != nil {
		return nil, release, fmt.Errorf("%w: download %s: %w", domain.ErrMediaUnavailable, att.Kind, err)
	}

	mimeType := s.resolveMIMEType(att, path)
	slog.Info("uploading file to gemini", "path", path, "mime_type", mimeType, "size", att.FileSize)

	file, err := s.files.UploadFile(ctx, path, mimeType)
	if err != nil {
		return nil, release, fmt.Errorf("%w: upload: %w", domain.ErrMediaUnavailable, err)
	}

	file, err = s.waitReady(ctx, file)
	if err != nil {
		return nil, release, err
	}
	return file, release, nil
}

// TempPattern is the os.CreateTemp pattern for an attachment. The unique id
// is shared by every chat that forwards the same file, so each turn gets its
// own random suffix.
func (s *MediaService) TempPattern(att domain.Attachment) string {
	name := config.TempFilePrefix + att.FileUniqueID + "_*"
	if att.Kind == domain.AttachmentImage {
		name += ".jpg"
	}
	return name
}

func (s *MediaService) createTempFile(att domain.Attachment) (string, error) {
	f, err := os.CreateTemp(s.tempDir, s.TempPattern(att))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return f.Name(), nil
}

func (s *MediaService) resolveMIMEType(att domain.Attachment, path string) string {
	if att.Kind == domain.AttachmentImage {
		return config.ImageMIMEType
	}
	if att.MIMEType != "" {
		return att.MIMEType
	}
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		slog.Warn("detect mime type", "path", path, "error", err)
		return "application/octet-stream"
	}
	return detected.String()
}

func (s *MediaService) waitReady(ctx context.Context, file *domain.RemoteFile) (*domain.RemoteFile, error) {
	deadline := time.NewTimer(s.maxWait)
	defer deadline.Stop()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for file.State == domain.RemoteFileProcessing {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMediaUnavailable, err)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", domain.ErrMediaUnavailable, ctx.Err())
		case <-deadline.C:
			return nil, fmt.Errorf("%w after %s: %s", domain.ErrMediaTimeout, s.maxWait, file.Name)
		case <-ticker.C:
		}

		next, err := s.files.GetFile(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: poll %s: %w", domain.ErrMediaUnavailable, file.Name, err)
		}
		file = next
	}

	if file.State == domain.RemoteFileFailed {
		return nil, fmt.Errorf("%w: %s", domain.ErrMediaProcessingFailed, file.Name)
	}
	return file, nil
}
