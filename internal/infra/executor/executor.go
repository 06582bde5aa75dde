// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/runoshun/guardkit/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct {
	maxOutput int
}

// NewClient creates a new command executor client.
// maxOutput caps captured output in bytes; 0 means unlimited.
func NewClient(maxOutput int) *Client {
	return &Client{maxOutput: maxOutput}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its combined output and exit status.
// The program is started directly with its argument vector; no shell is involved.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	// #nosec G204 - Program is checked against the allow-list by the caller and never passed to a shell
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	// A single writer for both streams keeps their relative order.
	out := &limitedBuffer{limit: c.maxOutput}
	execCmd.Stdout = out
	execCmd.Stderr = out

	// Run waits for the process and closes its pipes on every path.
	err := execCmd.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("execute %s: %w", cmd.Program, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &domain.SpawnError{Program: cmd.Program, Err: err}
		}
		return &domain.ExecResult{
			Output:    out.Bytes(),
			ExitCode:  exitStatus(exitErr),
			Truncated: out.truncated,
		}, nil
	}

	return &domain.ExecResult{
		Output:    out.Bytes(),
		ExitCode:  0,
		Truncated: out.truncated,
	}, nil
}

// exitStatus returns the child's exit code. A child killed by a signal
// reports 128+signal, the status a shell would give it.
func exitStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}

// limitedBuffer discards writes beyond limit bytes. A limit <= 0 means unlimited.
type limitedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (l *limitedBuffer) Write(p []byte) (int, error) {
	if l.limit <= 0 {
		return l.buf.Write(p)
	}
	remaining := l.limit - l.buf.Len()
	if remaining <= 0 {
		l.truncated = len(p) > 0 || l.truncated
		return len(p), nil
	}
	if len(p) > remaining {
		l.truncated = true
		_, _ = l.buf.Write(p[:remaining])
		return len(p), nil
	}
	return l.buf.Write(p)
}

func (l *limitedBuffer) Bytes() []byte {
	return l.buf.Bytes()
}
