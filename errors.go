package pfm

import "errors"

var (
	// ErrNotFound is returned when an image file cannot be opened for reading.
	ErrNotFound = errors.New("pfm: file not found")
	// ErrFormat is returned for a bad magic token or malformed header metadata.
	ErrFormat = errors.New("pfm: invalid format")
	// ErrGeometryMismatch is returned when two images of different size are merged or compared.
	ErrGeometryMismatch = errors.New("pfm: image geometry mismatch")
	// ErrIO is returned when writing an image fails.
	ErrIO = errors.New("pfm: write failed")
	// ErrTruncatedPayload is returned when the pixel payload is shorter than the header announces.
	ErrTruncatedPayload = errors.New("pfm: truncated pixel payload")
	// ErrEmptyImage is returned when an operation needs pixels and the image has none.
	ErrEmptyImage = errors.New("pfm: empty image")
)
