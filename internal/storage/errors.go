package storage

import "errors"

var (
	// ErrTruncated indicates the buffer is shorter than the structure it claims to contain.
	ErrTruncated = errors.New("storage: truncated input")

	// ErrBadMagic indicates the file header does not start with the SQLite magic string.
	ErrBadMagic = errors.New("storage: not a SQLite database")

	// ErrUnsupportedPageType indicates a page type this reader does not handle.
	ErrUnsupportedPageType = errors.New("storage: unsupported page type")

	// ErrTruncatedVarint indicates a varint ran out of bytes before terminating.
	ErrTruncatedVarint = errors.New("storage: truncated varint")

	// ErrMalformedHeader indicates a record header that cannot be decoded.
	ErrMalformedHeader = errors.New("storage: malformed record header")

	// ErrUnsupportedSerialType indicates a serial type outside the supported range.
	ErrUnsupportedSerialType = errors.New("storage: unsupported serial type")

	// ErrPayloadTooShort indicates a record payload shorter than its header declares.
	ErrPayloadTooShort = errors.New("storage: record payload too short")
)
