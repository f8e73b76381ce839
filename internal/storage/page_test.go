package storage

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPageSize = 4096

// buildFirstPage assembles a database first page: file header, table leaf
// page header, cell pointer array and cell content packed from the page end.
func buildFirstPage(pageSize int, cells [][]byte) []byte {
	buf := make([]byte, pageSize)
	copy(buf, magic)
	binary.BigEndian.PutUint16(buf[16:], uint16(pageSize))

	buf[FileHeaderSize] = byte(PageTypeLeaf)
	binary.BigEndian.PutUint16(buf[FileHeaderSize+3:], uint16(len(cells)))

	content := pageSize
	for i, cell := range cells {
		content -= len(cell)
		copy(buf[content:], cell)
		binary.BigEndian.PutUint16(buf[FileHeaderSize+8+2*i:], uint16(content))
	}
	binary.BigEndian.PutUint16(buf[FileHeaderSize+5:], uint16(content))

	return buf
}

func TestReadFirstPage(t *testing.T) {
	r := require.New(t)

	cellOne := []byte{0xB, 0xE, 0xE, 0xF}
	cellTwo := []byte{0xD, 0xE, 0xA, 0xD}
	buf := buildFirstPage(testPageSize, [][]byte{cellOne, cellTwo})

	page, err := ReadFirstPage(buf)
	r.NoError(err)
	r.Equal(uint16(testPageSize), page.FileHeader.PageSize)
	r.Equal(PageTypeLeaf, page.PageHeader.Type)
	r.Equal(8, page.HeaderSize)
	r.Equal(uint16(2), page.PageHeader.NumCells)
	r.Equal([]uint16{testPageSize - 4, testPageSize - 8}, page.CellOffsets)
	r.Equal(cellOne, page.Data[page.CellOffsets[0]:page.CellOffsets[0]+4])
	r.Equal(cellTwo, page.Data[page.CellOffsets[1]:page.CellOffsets[1]+4])
}

func TestReadFirstPage_TruncatedHeader(t *testing.T) {
	r := require.New(t)

	_, err := ReadFirstPage(make([]byte, 50))
	r.ErrorIs(err, ErrTruncated)
}

func TestReadFirstPage_TruncatedPage(t *testing.T) {
	r := require.New(t)

	buf := buildFirstPage(testPageSize, nil)

	_, err := ReadFirstPage(buf[:512])
	r.ErrorIs(err, ErrTruncated)
}

func TestReadFirstPage_PageSizeTooSmall(t *testing.T) {
	r := require.New(t)

	// Valid magic but a declared page size of 50 bytes, smaller than the
	// file header itself.
	buf := make([]byte, 200)
	copy(buf, magic)
	binary.BigEndian.PutUint16(buf[16:], 50)

	_, err := ReadFirstPage(buf)
	r.ErrorIs(err, ErrTruncated)
}

func TestReadFirstPage_BadMagic(t *testing.T) {
	r := require.New(t)

	buf := buildFirstPage(testPageSize, nil)
	copy(buf, "definitely not sqlite")

	_, err := ReadFirstPage(buf)
	r.ErrorIs(err, ErrBadMagic)
}

func TestReadFirstPage_InteriorRoot(t *testing.T) {
	r := require.New(t)

	buf := buildFirstPage(testPageSize, nil)
	buf[FileHeaderSize] = byte(PageTypeInternal)

	_, err := ReadFirstPage(buf)
	r.ErrorIs(err, ErrUnsupportedPageType)
}

func TestReadFirstPage_CellOffsetBeyondPage(t *testing.T) {
	r := require.New(t)

	buf := buildFirstPage(testPageSize, [][]byte{{0xB, 0xE, 0xE, 0xF}})
	binary.BigEndian.PutUint16(buf[FileHeaderSize+8:], uint16(testPageSize))

	_, err := ReadFirstPage(buf)
	r.ErrorIs(err, ErrTruncated)
}
