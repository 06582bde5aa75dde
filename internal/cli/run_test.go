package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/guardkit/internal/app"
	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunCommand_Echo(t *testing.T) {
	c, _ := newTestContainer(t, "")

	stdout, _, err := execute(t, c, "run", "echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)
}

func TestRunCommand_MetacharactersAreLiteral(t *testing.T) {
	c, projectDir := newTestContainer(t, "")
	marker := filepath.Join(projectDir, "pwned")

	stdout, _, err := execute(t, c, "run", "echo", "hi;", "touch", marker)

	require.NoError(t, err)
	assert.Equal(t, "hi; touch "+marker+"\n", stdout)
	_, statErr := os.Stat(marker)
	assert.True(t, os.IsNotExist(statErr), "metacharacters must not start a second command")
}

func TestRunCommand_NotAllowed(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), exec, testutil.NewMockHistoryRepository(), &testutil.MockClock{}, nil)

	_, _, err := execute(t, c, "run", "rm", "-rf", "/")

	assert.ErrorIs(t, err, domain.ErrCommandNotAllowed)
	assert.Empty(t, exec.Calls)
}

func TestRunCommand_FlagsBelongToCommand(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), exec, testutil.NewMockHistoryRepository(), &testutil.MockClock{}, nil)

	_, _, err := execute(t, c, "run", "ls", "-la", "--color=never")

	require.NoError(t, err)
	require.Len(t, exec.Calls, 1)
	assert.Equal(t, []string{"-la", "--color=never"}, exec.Calls[0].Args)
}

func TestRunCommand_NonZeroExit(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.Result = &domain.ExecResult{Output: []byte("boom\n"), ExitCode: 3}
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), exec, testutil.NewMockHistoryRepository(), &testutil.MockClock{}, nil)

	stdout, _, err := execute(t, c, "run", "ls", "missing")

	assert.Equal(t, "boom\n", stdout)
	var exitErr *ExitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
}

func TestRunCommand_Truncated(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.Result = &domain.ExecResult{Output: []byte("abcd"), Truncated: true}
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), exec, testutil.NewMockHistoryRepository(), &testutil.MockClock{}, nil)

	stdout, stderr, err := execute(t, c, "run", "echo", "abcdefgh")

	require.NoError(t, err)
	assert.Equal(t, "abcd", stdout)
	assert.Contains(t, stderr, "output truncated at 4 bytes")
}

func TestRunCommand_OutputJSON(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.Result = &domain.ExecResult{Output: []byte("boom\n"), ExitCode: 2}
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), exec, testutil.NewMockHistoryRepository(), &testutil.MockClock{}, nil)

	stdout, _, err := execute(t, c, "run", "-o", "json", "ls", "-la", "missing")

	var exitErr *ExitCodeError
	require.True(t, errors.As(err, &exitErr), "exit status is kept with structured output")
	assert.Equal(t, 2, exitErr.Code)

	var got runReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "ls -la missing", got.Command)
	assert.Equal(t, "ls", got.Verb)
	assert.Equal(t, []string{"-la", "missing"}, got.Args)
	assert.Equal(t, "boom\n", got.Output)
	assert.Equal(t, 2, got.ExitCode)
	assert.False(t, got.Truncated)
}

func TestRunCommand_OutputYAML(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.Result = &domain.ExecResult{Output: []byte("ok\n")}
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), exec, testutil.NewMockHistoryRepository(), &testutil.MockClock{}, nil)

	stdout, _, err := execute(t, c, "run", "--output", "yaml", "date")

	require.NoError(t, err)
	var got runReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "date", got.Verb)
	assert.Equal(t, "ok\n", got.Output)
	assert.Zero(t, got.ExitCode)
}

func TestRunCommand_UnknownOutputFormat(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), exec, testutil.NewMockHistoryRepository(), &testutil.MockClock{}, nil)

	_, _, err := execute(t, c, "run", "-o", "html", "date")

	assert.ErrorContains(t, err, `unknown format "html"`)
	assert.Empty(t, exec.Calls, "nothing runs when the format is rejected")
}
