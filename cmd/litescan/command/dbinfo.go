package command

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

type DBInfoCommand struct{}

func (c *DBInfoCommand) Help() string {
	helpText := `
Usage: litescan dbinfo [options] <database>

  Prints the page size and table count of a database file.

Options:

	-config=""	Configuration file
`

	return strings.TrimSpace(helpText)
}

func (c *DBInfoCommand) Synopsis() string {
	return "Prints the page size and table count of a database file"
}

func (c *DBInfoCommand) Run(args []string) int {
	var configPath string

	cmdFlags := flag.NewFlagSet("dbinfo", flag.ExitOnError)
	cmdFlags.StringVar(&configPath, "config", "", "config file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}
	if cmdFlags.NArg() != 1 {
		_, _ = fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}

	catalog, err := loadCatalog(configPath, cmdFlags.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return 1
	}

	fmt.Printf("database page size: %d\n", catalog.PageSize())
	fmt.Printf("number of tables: %d\n", catalog.TableCount())

	return 0
}
