package tui

import (
	"errors"
	"testing"

	"github.com/runoshun/guardkit/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestView_RendersTranscript(t *testing.T) {
	m := newTestModel(testutil.NewMockCommandExecutor())
	m.transcript = []entry{
		{kind: entryEval, input: "2+2", output: "4"},
		{kind: entryRun, input: "!ls nope", output: "no such file\n", exitCode: 2},
		{kind: entryRun, input: "!rm x", err: errors.New(`command not allowed: "rm"`)},
		{kind: entryRun, input: "!echo big", output: "abc", truncated: true},
	}

	view := m.View()

	assert.Contains(t, view, "guardkit")
	assert.Contains(t, view, "2+2")
	assert.Contains(t, view, "4")
	assert.Contains(t, view, "no such file")
	assert.Contains(t, view, "exit status 2")
	assert.Contains(t, view, `command not allowed: "rm"`)
	assert.Contains(t, view, "(output truncated)")
	assert.Contains(t, view, "quit")
}

func TestView_ScrollsToLatest(t *testing.T) {
	m := newTestModel(testutil.NewMockCommandExecutor())
	m.height = 10
	for _, in := range []string{"first", "second", "third", "fourth"} {
		m.transcript = append(m.transcript, entry{kind: entryEval, input: in, output: "0"})
	}

	view := m.View()

	assert.NotContains(t, view, "first")
	assert.Contains(t, view, "fourth")
}
