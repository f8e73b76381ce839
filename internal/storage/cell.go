package storage

import "fmt"

// LeafCell holds information about an on-disk table leaf cell.
type LeafCell struct {
	PayloadSize uint64
	RowID       uint64
	Payload     []byte
}

// ReadLeafCell decodes the table leaf cell starting at offset within page:
// a payload-size varint, a rowid varint, then the record payload.
func ReadLeafCell(page []byte, offset uint16) (*LeafCell, error) {
	if int(offset) >= len(page) {
		return nil, fmt.Errorf("cell offset %d beyond page end: %w", offset, ErrTruncated)
	}
	buf := page[offset:]

	payloadSize, n, err := DecodeVarint(buf)
	if err != nil {
		return nil, err
	}

	rowID, m, err := DecodeVarint(buf[n:])
	if err != nil {
		return nil, err
	}

	start := n + m
	if payloadSize > uint64(len(buf)-start) {
		return nil, fmt.Errorf("payload of %d bytes at offset %d: %w", payloadSize, offset, ErrPayloadTooShort)
	}

	return &LeafCell{
		PayloadSize: payloadSize,
		RowID:       rowID,
		Payload:     buf[start : start+int(payloadSize)],
	}, nil
}
