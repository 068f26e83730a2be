package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/swelham/oxi/internal/cli"
	"github.com/swelham/oxi/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "OXI",
		Section: "1",
		Source:  "oxi " + version.Version,
		Manual:  "oxi manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
