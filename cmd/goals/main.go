// Package main is the entry point for the goals CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/goals/internal/app"
	"github.com/runoshun/goals/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	rootCmd := cli.NewRootCommand(app.New, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
