package tui

import (
	"fmt"
	"strings"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("guardkit"))
	b.WriteString("\n")

	lines := m.transcriptLines()
	if m.height > 0 {
		// header, input and help take six lines
		if avail := m.height - 6; avail > 0 && len(lines) > avail {
			lines = lines[len(lines)-avail:]
		}
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// transcriptLines renders the transcript, one string per terminal line.
func (m *Model) transcriptLines() []string {
	var lines []string
	for _, e := range m.transcript {
		lines = append(lines, m.styles.Prompt.Render("› ")+m.styles.Input.Render(e.input))

		if e.err != nil {
			lines = append(lines, m.styles.Error.Render(e.err.Error()))
			continue
		}

		switch e.kind {
		case entryEval:
			lines = append(lines, m.styles.Result.Render(e.output))
		case entryRun:
			out := strings.TrimRight(e.output, "\n")
			if out != "" {
				for _, l := range strings.Split(out, "\n") {
					lines = append(lines, m.styles.Output.Render(l))
				}
			}
			if e.truncated {
				lines = append(lines, m.styles.ExitCode.Render("(output truncated)"))
			}
			if e.exitCode != 0 {
				lines = append(lines, m.styles.ExitCode.Render(fmt.Sprintf("exit status %d", e.exitCode)))
			}
		}
	}
	return lines
}
