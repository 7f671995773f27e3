package service

import (
	"context"
	"io"

	"github.com/bookit-dev/bookit/internal/domain"
	"github.com/bookit-dev/bookit/internal/logger"
	"github.com/bookit-dev/bookit/internal/metrics"
)

type UploadService interface {
	StorePhotos(ctx context.Context, files []*domain.PendingFile) ([]string, error)
}

type ObjectGateway interface {
	Store(ctx context.Context, data io.Reader, size int64, mimeType string) (string, error)
}

type Upload struct {
	gateway ObjectGateway
}

func NewUpload(gateway ObjectGateway) *Upload {
	return &Upload{gateway: gateway}
}

// StorePhotos uploads each file independently; there is no rollback. On
// failure the URLs stored so far are returned alongside the error. Every
// file handle is closed regardless of outcome.
func (u *Upload) StorePhotos(ctx context.Context, files []*domain.PendingFile) ([]string, error) {
	defer func() {
		for _, f := range files {
			if closer, ok := f.Data.(io.Closer); ok {
				closer.Close()
			}
		}
	}()

	urls := []string{}
	for _, f := range files {
		url, err := u.gateway.Store(ctx, f.Data, f.SizeBytes, f.MimeType)
		if err != nil {
			logger.Log.Error("photo upload failed", "filename", f.Filename, "error", err)
			return urls, err
		}
		urls = append(urls, url)
		metrics.PhotoUploaded(f.SizeBytes)
	}
	return urls, nil
}
