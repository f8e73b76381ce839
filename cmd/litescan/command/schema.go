package command

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/litescan/litescan/internal/schema"
)

type SchemaCommand struct{}

func (c *SchemaCommand) Help() string {
	helpText := `
Usage: litescan schema [options] <database> [table]

  Prints the schema of every table in a database file, or of a single
  table when one is named: root page, columns and the stored CREATE sql.

Options:

	-config=""	Configuration file
`

	return strings.TrimSpace(helpText)
}

func (c *SchemaCommand) Synopsis() string {
	return "Prints table schemas from a database file"
}

func (c *SchemaCommand) Run(args []string) int {
	var configPath string

	cmdFlags := flag.NewFlagSet("schema", flag.ExitOnError)
	cmdFlags.StringVar(&configPath, "config", "", "config file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}
	if cmdFlags.NArg() != 1 && cmdFlags.NArg() != 2 {
		_, _ = fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}

	catalog, err := loadCatalog(configPath, cmdFlags.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return 1
	}

	rows := catalog.Rows()
	if cmdFlags.NArg() == 2 {
		row, ok := catalog.Table(cmdFlags.Arg(1))
		if !ok {
			fmt.Printf("table: %s doesn't exist\n", cmdFlags.Arg(1))
			return 1
		}
		rows = []*schema.Row{row}
	}

	for _, row := range rows {
		printRow(row)
	}

	return 0
}

func printRow(row *schema.Row) {
	fmt.Printf("%s %s (rootpage %d)\n", row.Type, row.Name, row.RootPage)

	def, err := schema.ParseTableDefinition(row)
	if err == nil {
		for _, col := range def.Columns {
			key := ""
			if col.PrimaryKey {
				key = " primary key"
			}
			fmt.Printf("  col[%d]: %s %s%s\n", col.Offset, col.Name, col.Type, key)
		}
	}

	fmt.Printf("  sql: %s\n", row.SQL)
}
