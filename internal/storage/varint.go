package storage

import "io"

// DecodeVarint decodes a SQLite variable-length integer from the start of buf.
//
// A varint is big-endian: bytes 1 through 8 contribute their low 7 bits and
// continue while the high bit is set; a 9th byte, if reached, contributes all
// 8 bits unconditionally. Returns the value and the number of bytes consumed.
func DecodeVarint(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrTruncatedVarint
	}

	var value uint64
	for i := 0; i < 9 && i < len(buf); i++ {
		b := buf[i]

		if i == 8 {
			return value<<8 | uint64(b), 9, nil
		}

		value = value<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
	}

	// Every available byte had its continuation bit set.
	return 0, 0, ErrTruncatedVarint
}

// PutVarint writes v in SQLite varint encoding and returns the bytes written.
func PutVarint(w io.ByteWriter, v uint64) (int, error) {
	if v <= 0x7f {
		if err := w.WriteByte(byte(v)); err != nil {
			return 0, err
		}
		return 1, nil
	}

	// Values needing more than 56 bits take the full 9-byte form where the
	// final byte carries 8 bits.
	if v > 0x00ffffffffffffff {
		var buf [9]byte
		buf[8] = byte(v)
		v >>= 8
		for i := 7; i >= 0; i-- {
			buf[i] = byte(v&0x7f) | 0x80
			v >>= 7
		}
		for _, b := range buf {
			if err := w.WriteByte(b); err != nil {
				return 0, err
			}
		}
		return 9, nil
	}

	var buf [8]byte
	n := 0
	for ; v > 0; n++ {
		buf[n] = byte(v&0x7f) | 0x80
		v >>= 7
	}
	buf[0] &^= 0x80

	for i := n - 1; i >= 0; i-- {
		if err := w.WriteByte(buf[i]); err != nil {
			return 0, err
		}
	}

	return n, nil
}
