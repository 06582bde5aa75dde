package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/guardkit/internal/app"
	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/usecase"
	"github.com/spf13/cobra"
)

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Kind   string
		Format string
		Limit  int
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded evaluations and command runs",
		Long: `List recorded evaluations and command runs, newest first.

History is stored in the guardkit data directory and can be turned off
with [history] enabled = false.`,
		Example: `  guardkit history
  guardkit history --kind run --limit 10
  guardkit history --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			out, err := c.ListHistoryUseCase().Execute(cmd.Context(), usecase.ListHistoryInput{
				Kind:  opts.Kind,
				Limit: opts.Limit,
			})
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), out.Entries, opts.Format)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "", "Filter by kind (eval, run)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum number of entries (0 = all)")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatText, "Output format (text, json, yaml)")

	cmd.AddCommand(newHistoryClearCommand(c))

	return cmd
}

// newHistoryClearCommand creates the history clear subcommand.
func newHistoryClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			out, err := c.ClearHistoryUseCase().Execute(cmd.Context(), usecase.ClearHistoryInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", out.Removed)
			return nil
		},
	}
}

// printHistory writes entries in the requested format.
func printHistory(w io.Writer, entries []domain.HistoryEntry, format string) error {
	return writeFormatted(w, format, entries, func(w io.Writer) error {
		printHistoryTable(w, entries)
		return nil
	})
}

// printHistoryTable prints entries in TSV format.
func printHistoryTable(w io.Writer, entries []domain.HistoryEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "TIME\tKIND\tINPUT\tRESULT")

	for _, e := range entries {
		result := oneLine(e.Result)
		switch {
		case e.Failed():
			result = "error: " + e.Error
		case e.Kind == domain.KindRun && e.ExitCode != 0:
			result = fmt.Sprintf("[exit %d] %s", e.ExitCode, result)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Kind,
			e.Input,
			result,
		)
	}
}

// oneLine collapses s to its first line for table output.
func oneLine(s string) string {
	s = strings.TrimRight(s, "\n")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
