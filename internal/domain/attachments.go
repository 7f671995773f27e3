package domain

import "io"

// PendingFile is an uploaded photo that passed validation but has not been
// stored yet. Data must be closed by the consumer on every exit path.
type PendingFile struct {
	Filename    string
	SizeBytes   int64
	MimeType    string
	ImageWidth  *int
	ImageHeight *int
	Data        io.Reader
}
