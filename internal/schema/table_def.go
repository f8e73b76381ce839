package schema

import (
	"fmt"

	"github.com/xwb1989/sqlparser"
)

// ColumnDefinition represents a specification for a column in a table
type ColumnDefinition struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Offset     int    `json:"offset"`
	PrimaryKey bool   `json:"is_primary_key"`
}

// TableDefinition is a table's schema recovered from its CREATE TABLE text.
type TableDefinition struct {
	Name     string              `json:"name"`
	RawText  string              `json:"raw_text"`
	Columns  []*ColumnDefinition `json:"columns"`
	RootPage int64               `json:"root_page"`
}

// ParseTableDefinition parses the CREATE TABLE text stored on a schema row
// into column definitions. Rows that are not tables have no definition.
func ParseTableDefinition(row *Row) (*TableDefinition, error) {
	if row.Type != "table" {
		return nil, fmt.Errorf("schema entry %q is a %s, not a table", row.Name, row.Type)
	}

	stmt, err := sqlparser.Parse(row.SQL)
	if err != nil {
		return nil, fmt.Errorf("parse create sql for %q: %w", row.Name, err)
	}

	ddl, ok := stmt.(*sqlparser.DDL)
	if !ok || ddl.Action != sqlparser.CreateStr || ddl.TableSpec == nil {
		return nil, fmt.Errorf("schema entry %q: stored sql is not CREATE TABLE", row.Name)
	}

	primary := make(map[string]bool)
	for _, idx := range ddl.TableSpec.Indexes {
		if !idx.Info.Primary {
			continue
		}
		for _, col := range idx.Columns {
			primary[col.Column.Lowered()] = true
		}
	}

	var cols []*ColumnDefinition
	for i, col := range ddl.TableSpec.Columns {
		cols = append(cols, &ColumnDefinition{
			Offset:     i,
			Name:       col.Name.String(),
			Type:       col.Type.Type,
			PrimaryKey: primary[col.Name.Lowered()],
		})
	}

	return &TableDefinition{
		Name:     row.TblName,
		RawText:  row.SQL,
		Columns:  cols,
		RootPage: row.RootPage,
	}, nil
}
