// Package tui provides the interactive REPL for guardkit.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/guardkit/internal/usecase"
)

// CommandPrefix marks a line that is run as a command instead of evaluated.
const CommandPrefix = "!"

// maxTranscript bounds the number of entries kept on screen.
const maxTranscript = 200

// Evaluator evaluates arithmetic expressions.
type Evaluator interface {
	Execute(ctx context.Context, in usecase.EvaluateExpressionInput) (*usecase.EvaluateExpressionOutput, error)
}

// Runner runs allow-listed commands.
type Runner interface {
	Execute(ctx context.Context, in usecase.RunCommandInput) (*usecase.RunCommandOutput, error)
}

// entryKind identifies what produced a transcript entry.
type entryKind int

const (
	entryEval entryKind = iota
	entryRun
)

// entry is one line of the transcript.
// Fields are ordered to minimize memory padding.
type entry struct {
	err       error
	input     string
	output    string
	kind      entryKind
	exitCode  int
	truncated bool
}

// Model is the bubbletea model for the REPL.
type Model struct {
	// Dependencies
	eval Evaluator
	run  Runner

	// State
	transcript []entry
	recall     []string // Submitted lines, oldest first

	// Components
	keys  KeyMap
	help  help.Model
	input textinput.Model

	// Styles
	styles Styles

	// Numeric state
	recallIdx int
	width     int
	height    int
	busy      bool
	quitting  bool
}

// New creates a new REPL Model.
func New(eval Evaluator, run Runner) *Model {
	ti := textinput.New()
	ti.Placeholder = "2*(3+4) or !echo hello"
	ti.Prompt = "› "
	ti.CharLimit = 1024
	ti.Focus()

	return &Model{
		eval:   eval,
		run:    run,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  ti,
		styles: DefaultStyles(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// evaluate returns a command that evaluates line.
func (m *Model) evaluate(line string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.eval.Execute(context.Background(), usecase.EvaluateExpressionInput{Expression: line})
		if err != nil {
			return MsgEvaluated{Input: line, Err: err}
		}
		return MsgEvaluated{Input: line, Result: out.Formatted}
	}
}

// runCommand returns a command that runs line through the allow-listed runner.
func (m *Model) runCommand(line string) tea.Cmd {
	command := strings.TrimSpace(strings.TrimPrefix(line, CommandPrefix))
	return func() tea.Msg {
		out, err := m.run.Execute(context.Background(), usecase.RunCommandInput{Command: command})
		if err != nil {
			return MsgCommandRan{Input: line, Err: err}
		}
		return MsgCommandRan{
			Input:     line,
			Output:    string(out.Output),
			ExitCode:  out.ExitCode,
			Truncated: out.Truncated,
		}
	}
}

// appendEntry adds e to the transcript, dropping the oldest entries past the cap.
func (m *Model) appendEntry(e entry) {
	m.transcript = append(m.transcript, e)
	if over := len(m.transcript) - maxTranscript; over > 0 {
		m.transcript = m.transcript[over:]
	}
}
