package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// ExitErrors were already reported by the command.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
