package storage

import (
	"bytes"
	"encoding/binary"
)

// FileHeaderSize is the length of the header at the start of every database file.
const FileHeaderSize = 100

var magic = []byte("SQLite format 3\x00")

// FileHeader represents a database file header
type FileHeader struct {
	// 16-17	PageSize	uint16	Size of database page
	PageSize uint16
	// 24-27	FileChangeCounter	uint32	Initialized to 0. Each time a modification is made to the database, this counter is increased.
	FileChangeCounter uint32
	// 28-31	SizeInPages	uint32	Size of the database in pages
	SizeInPages uint32
	// 40-43	SchemaVersion	uint32	Initialized to 0. Each time the database schema is modified, this counter is increased.
	SchemaVersion uint32
}

// ParseFileHeader deserializes a FileHeader
func ParseFileHeader(buf []byte) (FileHeader, error) {
	if len(buf) < FileHeaderSize {
		return FileHeader{}, ErrTruncated
	}

	if !bytes.Equal(buf[:len(magic)], magic) {
		return FileHeader{}, ErrBadMagic
	}

	return FileHeader{
		PageSize:          binary.BigEndian.Uint16(buf[16:18]),
		FileChangeCounter: binary.BigEndian.Uint32(buf[24:28]),
		SizeInPages:       binary.BigEndian.Uint32(buf[28:32]),
		SchemaVersion:     binary.BigEndian.Uint32(buf[40:44]),
	}, nil
}
