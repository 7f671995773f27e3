package validation

import (
	"fmt"
	"net/http"
)

// ValidateAndParseMultipart enforces the request size cap and parses the
// multipart form. MaxBytesReader stops reading at the limit, so an oversized
// upload never exhausts server resources regardless of its claimed size.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return fmt.Errorf("%w: failed to parse multipart form", ErrPayloadTooLarge)
	}

	return nil
}

// CalculateMaxRequestSize adds a buffer for form fields and multipart overhead.
func CalculateMaxRequestSize(maxUploadSize int64, bufferSize int64) int64 {
	return maxUploadSize + bufferSize
}

// FormatSizeMB converts bytes to megabytes for user-facing error messages.
func FormatSizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
