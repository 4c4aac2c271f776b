package source

import "errors"

var (
	// ErrDecode is returned when a document is not an array of objects.
	ErrDecode = errors.New("source: failed to decode records")

	// ErrUnsupportedFormat is returned by ReadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("source: unsupported records file format")

	// ErrReadFile is returned when the records file cannot be opened.
	ErrReadFile = errors.New("source: failed to read records file")
)
