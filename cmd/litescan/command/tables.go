package command

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

type TablesCommand struct{}

func (c *TablesCommand) Help() string {
	helpText := `
Usage: litescan tables [options] <database>

  Prints the names of all tables in a database file.

Options:

	-config=""	Configuration file
`

	return strings.TrimSpace(helpText)
}

func (c *TablesCommand) Synopsis() string {
	return "Prints the names of all tables in a database file"
}

func (c *TablesCommand) Run(args []string) int {
	var configPath string

	cmdFlags := flag.NewFlagSet("tables", flag.ExitOnError)
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

	fmt.Println(strings.Join(catalog.TableNames(), " "))

	return 0
}
