package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookit-dev/bookit/internal/domain"
)

type MockGateway struct {
	StoreFunc func(ctx context.Context, data io.Reader, size int64, mimeType string) (string, error)
	calls     int
}

func (m *MockGateway) Store(ctx context.Context, data io.Reader, size int64, mimeType string) (string, error) {
	m.calls++
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, data, size, mimeType)
	}
	return fmt.Sprintf("https://bucket.s3.amazonaws.com/photo-%d.jpg", m.calls), nil
}

type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

func pendingFiles(n int) ([]*domain.PendingFile, []*trackedReader) {
	files := make([]*domain.PendingFile, 0, n)
	readers := make([]*trackedReader, 0, n)
	for i := 0; i < n; i++ {
		r := &trackedReader{Reader: strings.NewReader("data")}
		readers = append(readers, r)
		files = append(files, &domain.PendingFile{
			Filename: fmt.Sprintf("photo%d.jpg", i),
			MimeType: "image/jpeg",
			Data:     r,
		})
	}
	return files, readers
}

func TestStorePhotosReturnsOneURLPerFile(t *testing.T) {
	gateway := &MockGateway{}
	svc := NewUpload(gateway)

	files, readers := pendingFiles(3)
	urls, err := svc.StorePhotos(context.Background(), files)
	require.NoError(t, err)

	assert.Len(t, urls, 3)
	assert.Equal(t, 3, gateway.calls)
	for _, r := range readers {
		assert.True(t, r.closed)
	}
}

func TestStorePhotosFailureKeepsEarlierURLs(t *testing.T) {
	gateway := &MockGateway{}
	gateway.StoreFunc = func(ctx context.Context, data io.Reader, size int64, mimeType string) (string, error) {
		if gateway.calls == 3 {
			return "", errors.New("storage down")
		}
		return fmt.Sprintf("url-%d", gateway.calls), nil
	}
	svc := NewUpload(gateway)

	files, readers := pendingFiles(4)
	urls, err := svc.StorePhotos(context.Background(), files)
	require.Error(t, err)

	// files are independent: the first two URLs survive, nothing after the
	// failure is attempted
	assert.Equal(t, []string{"url-1", "url-2"}, urls)
	assert.Equal(t, 3, gateway.calls)
	for _, r := range readers {
		assert.True(t, r.closed, "handles are released on every exit path")
	}
}

func TestStorePhotosEmptyBatch(t *testing.T) {
	svc := NewUpload(&MockGateway{})

	urls, err := svc.StorePhotos(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, urls)
}
