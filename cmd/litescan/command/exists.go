package command

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

type ExistsCommand struct{}

func (c *ExistsCommand) Help() string {
	helpText := `
Usage: litescan exists [options] <database> <table>

  Reports whether a table exists in a database file. Exits non-zero when
  the table is missing.

Options:

	-config=""	Configuration file
`

	return strings.TrimSpace(helpText)
}

func (c *ExistsCommand) Synopsis() string {
	return "Reports whether a table exists in a database file"
}

func (c *ExistsCommand) Run(args []string) int {
	var configPath string

	cmdFlags := flag.NewFlagSet("exists", flag.ExitOnError)
	cmdFlags.StringVar(&configPath, "config", "", "config file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}
	if cmdFlags.NArg() != 2 {
		_, _ = fmt.Fprintln(os.Stderr, c.Help())
		return 1
	}

	catalog, err := loadCatalog(configPath, cmdFlags.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return 1
	}

	name := cmdFlags.Arg(1)
	if !catalog.Exists(name) {
		fmt.Printf("table: %s doesn't exist\n", name)
		return 1
	}

	fmt.Printf("table: %s exists in the db\n", name)

	return 0
}
