package reference

import "errors"

var (
	// ErrParse is returned when a tables document cannot be decoded.
	ErrParse = errors.New("reference: failed to parse tables document")

	// ErrEmptyTables is returned when a document declares no region codes.
	ErrEmptyTables = errors.New("reference: tables document declares no regions")

	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("reference: unsupported tables file format")

	// ErrReadFile is returned when the tables file cannot be read.
	ErrReadFile = errors.New("reference: failed to read tables file")
)
