package schema

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"

	"github.com/litescan/litescan/internal/storage"
)

// Catalog is the schema read from page 1 of a database file. It is built
// once by Load and never mutated afterwards.
type Catalog struct {
	pageSize uint16
	numCells int
	rows     []*Row
}

// Load parses buf, which must hold at least the first page of a database
// file, into a Catalog.
func Load(buf []byte) (*Catalog, error) {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return LoadWithLogger(logger, buf)
}

// LoadWithLogger is Load with debug tracing of each decoded cell.
func LoadWithLogger(logger *logrus.Logger, buf []byte) (*Catalog, error) {
	page, err := storage.ReadFirstPage(buf)
	if err != nil {
		return nil, err
	}

	rows := make([]*Row, 0, len(page.CellOffsets))
	for _, offset := range page.CellOffsets {
		cell, err := storage.ReadLeafCell(page.Data, offset)
		if err != nil {
			return nil, err
		}

		row, err := DecodeRow(cell)
		if err != nil {
			return nil, err
		}

		logger.WithFields(logrus.Fields{
			"offset":   offset,
			"rowid":    row.RowID,
			"type":     row.Type,
			"tbl_name": row.TblName,
		}).Debug("decoded schema cell")

		rows = append(rows, row)
	}

	return &Catalog{
		pageSize: page.FileHeader.PageSize,
		numCells: int(page.PageHeader.NumCells),
		rows:     rows,
	}, nil
}

// PageSize returns the database page size in bytes.
func (c *Catalog) PageSize() uint16 {
	return c.pageSize
}

// TableCount returns the number of schema entries the page header declares.
func (c *Catalog) TableCount() int {
	return c.numCells
}

// TableNames returns every tbl_name in catalog order.
func (c *Catalog) TableNames() []string {
	names := make([]string, 0, len(c.rows))
	for _, row := range c.rows {
		names = append(names, row.TblName)
	}
	return names
}

// Exists reports whether a schema entry with the exact tbl_name exists.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.Table(name)
	return ok
}

// Table returns the schema entry for the given tbl_name.
func (c *Catalog) Table(name string) (*Row, bool) {
	for _, row := range c.rows {
		if row.TblName == name {
			return row, true
		}
	}
	return nil, false
}

// Rows returns every schema entry in catalog order. The returned slice is
// the caller's to modify; the catalog keeps its own.
func (c *Catalog) Rows() []*Row {
	rows := make([]*Row, len(c.rows))
	copy(rows, c.rows)
	return rows
}
