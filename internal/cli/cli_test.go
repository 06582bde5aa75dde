package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/guardkit/internal/app"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates an app.Container backed by real infrastructure
// in temporary directories. It returns the container and the project directory.
func newTestContainer(t *testing.T, projectConfig string) (*app.Container, string) {
	t.Helper()

	projectDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	if projectConfig != "" {
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, ".guardkit.toml"), []byte(projectConfig), 0o600))
	}

	c, err := app.New(projectDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, projectDir
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
