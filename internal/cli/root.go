// Package cli provides the command-line interface for guardkit.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/guardkit/internal/app"
	"github.com/runoshun/guardkit/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTools = "tools"
	groupSetup = "setup"
)

// launchREPLFunc is a function variable for launching the REPL, allowing it to be mocked in tests.
var launchREPLFunc = launchREPL

// NewRootCommand creates the root command for guardkit.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "guardkit",
		Short: "Guarded expression evaluator and allow-listed command runner",
		Long: `guardkit evaluates arithmetic expressions and runs commands from an allow-list.

Expressions may only contain digits, '.', whitespace, parentheses and + - * /.
They are parsed and evaluated directly; nothing is ever handed to an interpreter.

Commands are split on whitespace and started without a shell, so metacharacters
such as ';', '|' or '$(...)' are passed to the program as plain arguments.
Only commands whose first word is in the [runner] allow list are started.

Run without arguments to start the interactive REPL.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchREPLFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTools, Title: "Tools:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	evalCmd := newEvalCommand(c)
	evalCmd.GroupID = groupTools

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupTools

	replCmd := newREPLCommand(c)
	replCmd.GroupID = groupTools

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupTools

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		evalCmd,
		runCmd,
		replCmd,
		historyCmd,
		configCmd,
	)

	return root
}

// newREPLCommand creates the repl command.
func newREPLCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Long: `Start an interactive session.

Each line is evaluated as an arithmetic expression. A line starting with '!'
is run as a command through the allow-list instead. Type :q or press ctrl+c to quit.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchREPLFunc(c)
		},
	}
}

// launchREPL runs the REPL until the user quits.
func launchREPL(c *app.Container) error {
	if c == nil {
		return errNoContainer
	}
	model := tui.New(c.EvaluateExpressionUseCase(), c.RunCommandUseCase())
	_, err := tea.NewProgram(model).Run()
	return err
}
