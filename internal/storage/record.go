package storage

import "fmt"

// SerialType is a per-column code from a record header that determines the
// column's storage class and on-disk width.
type SerialType uint64

// IsText reports whether the serial type encodes a text value.
func (s SerialType) IsText() bool {
	return s >= 13 && s%2 == 1
}

// IsBlob reports whether the serial type encodes a blob value.
func (s SerialType) IsBlob() bool {
	return s >= 12 && s%2 == 0
}

// IsInteger reports whether the serial type encodes an integer value,
// including the constant 0 and 1 forms.
func (s SerialType) IsInteger() bool {
	return (s >= 1 && s <= 6) || s == 8 || s == 9
}

// ContentSize returns the number of payload bytes the column occupies.
func (s SerialType) ContentSize() (int, error) {
	switch s {
	case 0, 8, 9:
		return 0, nil
	case 1:
		return 1, nil
	case 2:
		return 2, nil
	case 3:
		return 3, nil
	case 4:
		return 4, nil
	case 5:
		return 6, nil
	case 6, 7:
		return 8, nil
	case 10, 11:
		return 0, fmt.Errorf("serial type %d is reserved: %w", s, ErrUnsupportedSerialType)
	}

	if s.IsBlob() {
		return int(s-12) / 2, nil
	}
	return int(s-13) / 2, nil
}

// RecordHeader is a record's decoded serial-type header.
type RecordHeader struct {
	// Size is the total header length in bytes, including its own varint.
	Size int

	// SerialTypes holds one entry per column in declaration order.
	SerialTypes []SerialType
}

// ParseRecordHeader decodes the serial-type header at the start of a record
// payload.
func ParseRecordHeader(payload []byte) (*RecordHeader, error) {
	size, n, err := DecodeVarint(payload)
	if err != nil {
		return nil, err
	}
	if size < uint64(n) || size > uint64(len(payload)) {
		return nil, fmt.Errorf("record header of %d bytes in %d byte payload: %w", size, len(payload), ErrMalformedHeader)
	}

	var serialTypes []SerialType
	for cursor := n; cursor < int(size); {
		serial, m, err := DecodeVarint(payload[cursor:])
		if err != nil {
			return nil, err
		}
		serialTypes = append(serialTypes, SerialType(serial))
		cursor += m
		if cursor > int(size) {
			return nil, fmt.Errorf("serial type varint crosses record header end at %d: %w", size, ErrMalformedHeader)
		}
	}

	return &RecordHeader{
		Size:        int(size),
		SerialTypes: serialTypes,
	}, nil
}

// Record is a decoded row: one byte slice per column, in header order.
type Record struct {
	Header *RecordHeader
	Values [][]byte
}

// ParseRecord slices the record body following header into per-column values.
// Each column's width comes from its serial type, never from column content.
func ParseRecord(payload []byte, header *RecordHeader) (*Record, error) {
	values := make([][]byte, len(header.SerialTypes))

	cursor := header.Size
	for i, serial := range header.SerialTypes {
		size, err := serial.ContentSize()
		if err != nil {
			return nil, err
		}
		if cursor+size > len(payload) {
			return nil, fmt.Errorf("column %d needs %d bytes at offset %d of %d: %w",
				i, size, cursor, len(payload), ErrPayloadTooShort)
		}
		values[i] = payload[cursor : cursor+size]
		cursor += size
	}

	return &Record{Header: header, Values: values}, nil
}

// DecodeInteger interprets buf as the big-endian twos-complement integer the
// serial type declares. The constant forms 8 and 9 occupy no payload bytes.
func (s SerialType) DecodeInteger(buf []byte) (int64, error) {
	switch s {
	case 8:
		return 0, nil
	case 9:
		return 1, nil
	}
	if !s.IsInteger() {
		return 0, fmt.Errorf("serial type %d is not an integer: %w", s, ErrUnsupportedSerialType)
	}

	var v int64
	for _, b := range buf {
		v = v<<8 | int64(b)
	}
	shift := uint(64 - 8*len(buf))
	return v << shift >> shift, nil
}
