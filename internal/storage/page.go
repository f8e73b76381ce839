package storage

import (
	"encoding/binary"
	"fmt"
)

// FirstPage is the parsed root schema page of a database file.
//
// Page 1 of a database file is the root page of a table b-tree that
// holds a special table named "sqlite_master" which stores the complete
// database schema. The structure of the sqlite_master table is as if it
// had been created using the following SQL:
//
// CREATE TABLE sqlite_master(
//    type text,
//    name text,
//    tbl_name text,
//    rootpage integer,
//    sql text
// );
type FirstPage struct {
	FileHeader FileHeader
	PageHeader PageHeader

	// HeaderSize is the b-tree page header length derived from the page type.
	HeaderSize int

	// CellOffsets holds exactly NumCells offsets into Data, in cell pointer
	// array order.
	CellOffsets []uint16

	// Data is the full page, including the 100-byte file header.
	Data []byte
}

// ReadFirstPage parses the file header, the b-tree page header of page 1 and
// its cell pointer array. buf must contain at least the full first page.
func ReadFirstPage(buf []byte) (*FirstPage, error) {
	fileHeader, err := ParseFileHeader(buf)
	if err != nil {
		return nil, err
	}

	pageSize := int(fileHeader.PageSize)
	if pageSize < FileHeaderSize+8 {
		return nil, fmt.Errorf("page size %d too small for a schema page: %w", pageSize, ErrTruncated)
	}
	if len(buf) < pageSize {
		return nil, fmt.Errorf("page size %d, have %d bytes: %w", pageSize, len(buf), ErrTruncated)
	}

	pageHeader, err := ParsePageHeader(buf[FileHeaderSize:pageSize])
	if err != nil {
		return nil, err
	}

	// Only a table leaf root is supported. An internal root means the schema
	// spans multiple pages; refuse it rather than misread the cell area.
	if pageHeader.Type != PageTypeLeaf {
		return nil, fmt.Errorf("page type 0x%02x: %w", byte(pageHeader.Type), ErrUnsupportedPageType)
	}

	headerSize := pageHeader.Type.HeaderSize()

	pointerArray := FileHeaderSize + headerSize
	if pointerArray+2*int(pageHeader.NumCells) > pageSize {
		return nil, fmt.Errorf("cell pointer array overruns page: %w", ErrTruncated)
	}

	cellOffsets := make([]uint16, pageHeader.NumCells)
	for i := range cellOffsets {
		offset := binary.BigEndian.Uint16(buf[pointerArray+2*i:])
		if int(offset) >= pageSize {
			return nil, fmt.Errorf("cell %d offset %d beyond page size %d: %w", i, offset, pageSize, ErrTruncated)
		}
		cellOffsets[i] = offset
	}

	return &FirstPage{
		FileHeader:  fileHeader,
		PageHeader:  pageHeader,
		HeaderSize:  headerSize,
		CellOffsets: cellOffsets,
		Data:        buf[:pageSize],
	}, nil
}
