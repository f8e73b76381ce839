package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/litescan/litescan/cmd/litescan/command"
)

func main() {
	commands := map[string]cli.CommandFactory{
		"dbinfo": func() (cli.Command, error) {
			return &command.DBInfoCommand{}, nil
		},
		"tables": func() (cli.Command, error) {
			return &command.TablesCommand{}, nil
		},
		"exists": func() (cli.Command, error) {
			return &command.ExistsCommand{}, nil
		},
		"schema": func() (cli.Command, error) {
			return &command.SchemaCommand{}, nil
		},
	}

	liteCLI := &cli.CLI{
		Args:     os.Args[1:],
		Commands: commands,
		HelpFunc: cli.BasicHelpFunc("litescan"),
	}

	exitCode, err := liteCLI.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(exitCode)
}
