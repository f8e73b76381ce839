package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLeafCell(t *testing.T) {
	r := require.New(t)

	cell := append([]byte{54, 0x01}, masterRecordPayload...)
	buf := buildFirstPage(testPageSize, [][]byte{cell})

	page, err := ReadFirstPage(buf)
	r.NoError(err)

	leaf, err := ReadLeafCell(page.Data, page.CellOffsets[0])
	r.NoError(err)
	r.Equal(uint64(54), leaf.PayloadSize)
	r.Equal(uint64(1), leaf.RowID)
	r.Equal(masterRecordPayload, leaf.Payload)
}

func TestReadLeafCell_OffsetBeyondPage(t *testing.T) {
	r := require.New(t)

	_, err := ReadLeafCell(make([]byte, 64), 64)
	r.ErrorIs(err, ErrTruncated)
}

func TestReadLeafCell_VarintRunsOffPage(t *testing.T) {
	r := require.New(t)

	page := make([]byte, 8)
	page[7] = 0x81

	_, err := ReadLeafCell(page, 7)
	r.ErrorIs(err, ErrTruncatedVarint)
}

func TestReadLeafCell_DeclaredPayloadBeyondPage(t *testing.T) {
	r := require.New(t)

	page := make([]byte, 8)
	page[4] = 100 // payload size
	page[5] = 1   // rowid

	_, err := ReadLeafCell(page, 4)
	r.ErrorIs(err, ErrPayloadTooShort)
}
