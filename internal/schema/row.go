package schema

import (
	"fmt"

	"github.com/litescan/litescan/internal/storage"
)

// Column positions in a sqlite_master record.
const (
	colType = iota
	colName
	colTblName
	colRootPage
	colSQL
	masterColumns
)

// Row is one decoded sqlite_master entry.
type Row struct {
	// Type is the object type: "table", "index", "view" or "trigger".
	Type string

	// Name is the object name.
	Name string

	// TblName is the table the object belongs to. For tables it equals Name.
	TblName string

	// RootPage is the page number of the object's b-tree root.
	RootPage int64

	// SQL is the text of the CREATE statement that defined the object.
	SQL string

	// RowID is the rowid of the sqlite_master entry.
	RowID uint64
}

// DecodeRow decodes the sqlite_master row stored in a table leaf cell.
func DecodeRow(cell *storage.LeafCell) (*Row, error) {
	header, err := storage.ParseRecordHeader(cell.Payload)
	if err != nil {
		return nil, err
	}
	if len(header.SerialTypes) < masterColumns {
		return nil, fmt.Errorf("sqlite_master record has %d columns, want %d: %w",
			len(header.SerialTypes), masterColumns, storage.ErrMalformedHeader)
	}

	for _, i := range []int{colType, colName, colTblName, colSQL} {
		if s := header.SerialTypes[i]; !s.IsText() {
			return nil, fmt.Errorf("column %d has serial type %d, want text: %w",
				i, s, storage.ErrUnsupportedSerialType)
		}
	}
	rootSerial := header.SerialTypes[colRootPage]
	if !rootSerial.IsInteger() {
		return nil, fmt.Errorf("rootpage has serial type %d, want integer: %w",
			rootSerial, storage.ErrUnsupportedSerialType)
	}

	record, err := storage.ParseRecord(cell.Payload, header)
	if err != nil {
		return nil, err
	}

	rootPage, err := rootSerial.DecodeInteger(record.Values[colRootPage])
	if err != nil {
		return nil, err
	}

	return &Row{
		Type:     string(record.Values[colType]),
		Name:     string(record.Values[colName]),
		TblName:  string(record.Values[colTblName]),
		RootPage: rootPage,
		SQL:      string(record.Values[colSQL]),
		RowID:    cell.RowID,
	}, nil
}
