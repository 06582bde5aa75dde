// Package main is the entry point for the guardkit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/guardkit/internal/app"
	"github.com/runoshun/guardkit/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(exitCode(run(), os.Stderr))
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// exitCode maps err to the process exit status, printing it when needed.
// A child's non-zero status is passed through without a message; codes
// outside 1..255 become 1 so os.Exit never reports a wrapped value.
func exitCode(err error, stderr *os.File) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		if exitErr.Code < 1 || exitErr.Code > 255 {
			return 1
		}
		return exitErr.Code
	}
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	return 1
}
