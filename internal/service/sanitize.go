package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict policy: listing and booking text fields are plain text, any markup
// a caller smuggles in is dropped before persisting
var textPolicy = bluemonday.StrictPolicy()

func sanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}
