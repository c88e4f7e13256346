package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/syndromatic/syndock-migrate/internal/cli"
	"github.com/syndromatic/syndock-migrate/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SYNDOCK-MIGRATE",
		Section: "1",
		Source:  "syndock-migrate " + version.Version,
		Manual:  "SynDock manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
