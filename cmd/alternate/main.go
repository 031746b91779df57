package main

import (
	"fmt"
	"os"

	"github.com/danieljhkim/alternate/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(os.Stderr, err))
		os.Exit(1)
	}
}
