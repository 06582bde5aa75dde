package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// quitWords end the session when submitted.
var quitWords = map[string]struct{}{
	":q":    {},
	":quit": {},
	"exit":  {},
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case MsgEvaluated:
		m.busy = false
		m.appendEntry(entry{
			kind:   entryEval,
			input:  msg.Input,
			output: msg.Result,
			err:    msg.Err,
		})
		return m, nil

	case MsgCommandRan:
		m.busy = false
		m.appendEntry(entry{
			kind:      entryRun,
			input:     msg.Input,
			output:    msg.Output,
			err:       msg.Err,
			exitCode:  msg.ExitCode,
			truncated: msg.Truncated,
		})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Prev):
		m.recallPrev()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.recallNext()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.transcript = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current line.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	m.input.Reset()
	m.recall = append(m.recall, line)
	m.recallIdx = len(m.recall)

	if _, ok := quitWords[line]; ok {
		m.quitting = true
		return m, tea.Quit
	}

	m.busy = true
	if strings.HasPrefix(line, CommandPrefix) {
		return m, m.runCommand(line)
	}
	return m, m.evaluate(line)
}

func (m *Model) recallPrev() {
	if m.recallIdx == 0 {
		return
	}
	m.recallIdx--
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.recallIdx >= len(m.recall) {
		return
	}
	m.recallIdx++
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}
