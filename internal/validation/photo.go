package validation

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/bookit-dev/bookit/internal/domain"
)

// ValidatePhotos opens each uploaded file, checks its MIME type against the
// allow-list and extracts image dimensions. On any failure every file opened
// so far is closed before returning.
func ValidatePhotos(fileHeaders []*multipart.FileHeader, allowedMimes []string, maxCount int) ([]*domain.PendingFile, error) {
	if len(fileHeaders) == 0 {
		return nil, nil
	}
	if maxCount > 0 && len(fileHeaders) > maxCount {
		return nil, fmt.Errorf("%w: %d files, limit is %d", ErrTooManyPhotos, len(fileHeaders), maxCount)
	}

	allowed := make(map[string]bool, len(allowedMimes))
	for _, m := range allowedMimes {
		allowed[m] = true
	}

	var pending []*domain.PendingFile
	closeAll := func() {
		for _, pf := range pending {
			if closer, ok := pf.Data.(multipart.File); ok {
				closer.Close()
			}
		}
	}

	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}

		mimeType, err := DetectMimeType(fileHeader)
		if err != nil {
			file.Close()
			closeAll()
			return nil, err
		}

		if !allowed[mimeType] {
			file.Close()
			closeAll()
			return nil, fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
		}

		width, height := ExtractImageDimensions(file, mimeType)

		pending = append(pending, &domain.PendingFile{
			Filename:    fileHeader.Filename,
			SizeBytes:   fileHeader.Size,
			MimeType:    mimeType,
			ImageWidth:  width,
			ImageHeight: height,
			Data:        file,
		})
	}

	return pending, nil
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detectedType := mime.TypeByExtension(ext); detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}

func ExtractImageDimensions(file multipart.File, mimeType string) (*int, *int) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, nil
	}

	img, _, err := image.DecodeConfig(file)
	if err != nil {
		file.Seek(0, 0)
		return nil, nil
	}
	file.Seek(0, 0)

	width, height := img.Width, img.Height
	return &width, &height
}
