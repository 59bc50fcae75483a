// Package main is the entry point for the bonk CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/bonk/internal/app"
	"github.com/runoshun/bonk/internal/cli"
	"github.com/runoshun/bonk/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, domain.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
