package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/guardkit/internal/app"
	"github.com/runoshun/guardkit/internal/usecase"
	"github.com/spf13/cobra"
)

// newEvalCommand creates the eval command.
func newEvalCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression and print the result.

Arguments are joined with spaces, so quoting is optional:
  guardkit eval '(1+2)*3'
  guardkit eval 10 / 4
  guardkit eval -- -1+2

Allowed characters: digits, '.', whitespace, '(', ')', '+', '-', '*', '/'.
Anything else is rejected before evaluation. Division by zero is an error.

Flags go before the expression:
  guardkit eval -o json '2*21'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			expression := strings.Join(args, " ")
			out, err := c.EvaluateExpressionUseCase().Execute(cmd.Context(), usecase.EvaluateExpressionInput{
				Expression: expression,
			})
			if err != nil {
				return err
			}
			report := evalReport{Expression: expression, Result: out.Formatted, Value: out.Value}
			return writeFormatted(cmd.OutOrStdout(), format, report, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out.Formatted)
				return err
			})
		},
	}
	// Operands after the first argument, such as "-1" in "2 -1", are not flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}
