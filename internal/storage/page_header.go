package storage

import "encoding/binary"

// PageType type of page. See associated enumeration values.
type PageType byte

const (
	// PageTypeInternal internal table page
	PageTypeInternal PageType = 0x05

	// PageTypeLeaf leaf table page
	PageTypeLeaf PageType = 0x0D

	// PageTypeInternalIndex internal index page
	PageTypeInternalIndex PageType = 0x02

	// PageTypeLeafIndex leaf index page
	PageTypeLeafIndex PageType = 0x0A
)

// HeaderSize returns the b-tree page header length for the page type:
// 8 bytes for leaf pages, 12 for internal pages (the extra 4 bytes hold
// the right-most child pointer).
func (t PageType) HeaderSize() int {
	switch t {
	case PageTypeLeaf, PageTypeLeafIndex:
		return 8
	default:
		return 12
	}
}

// PageHeader contains metadata about the page
//
// A b-tree page is laid out as:
// The 100-byte database file header (found on page 1 only)
// The 8 or 12 byte b-tree page header
// The cell pointer array
// Unallocated space
// The cell content area
// The reserved region.
type PageHeader struct {
	// Type is the PageType for the page
	Type PageType

	// FreeBlock The two-byte integer at offset 1 gives the start of the first freeblock on the page, or is zero if there are no freeblocks.
	FreeBlock uint16

	// NumCells is the number of cells stored in this page.
	NumCells uint16

	// CellsOffset the start of the cell content area. A zero value for this integer is interpreted as 65536.
	CellsOffset uint16

	// FragmentedFreeBytes the number of fragmented free bytes within the cell content area.
	FragmentedFreeBytes byte
}

// ParsePageHeader deserializes a PageHeader from buf, which must begin at the
// first byte of the b-tree page header.
func ParsePageHeader(buf []byte) (PageHeader, error) {
	if len(buf) < 8 {
		return PageHeader{}, ErrTruncated
	}

	return PageHeader{
		Type:                PageType(buf[0]),
		FreeBlock:           binary.BigEndian.Uint16(buf[1:3]),
		NumCells:            binary.BigEndian.Uint16(buf[3:5]),
		CellsOffset:         binary.BigEndian.Uint16(buf[5:7]),
		FragmentedFreeBytes: buf[7],
	}, nil
}
