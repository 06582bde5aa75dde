package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/guardkit/internal/app"
	"github.com/runoshun/guardkit/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run an allow-listed command",
		Long: `Run a command whose first word is in the [runner] allow list.

The command line is split on whitespace and started directly, never through a
shell. Shell metacharacters are passed as literal arguments:
  guardkit run echo 'hi; rm -rf /'    # prints: hi; rm -rf /

Combined stdout and stderr is printed. guardkit exits with the command's
exit status. With --output json or yaml the output and exit status are
reported as a single document instead.`,
		Example: `  guardkit run date
  guardkit run ls -la
  guardkit run -o json uname -a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			command := strings.Join(args, " ")
			out, err := c.RunCommandUseCase().Execute(cmd.Context(), usecase.RunCommandInput{
				Command: command,
			})
			if err != nil {
				return err
			}

			report := runReport{
				Command:   command,
				Verb:      out.Verb,
				Args:      out.Args,
				Output:    string(out.Output),
				ExitCode:  out.ExitCode,
				Truncated: out.Truncated,
			}
			err = writeFormatted(cmd.OutOrStdout(), format, report, func(w io.Writer) error {
				_, err := w.Write(out.Output)
				return err
			})
			if err != nil {
				return err
			}
			if out.Truncated {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: output truncated at %d bytes\n", len(out.Output))
			}
			if out.ExitCode != 0 {
				return &ExitCodeError{Code: out.ExitCode}
			}
			return nil
		},
	}
	// Flags after the command name belong to the command.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}
