package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/usecase/shared"
)

// RunCommandInput contains the parameters for running an allow-listed command.
type RunCommandInput struct {
	Command string // Command line; split on whitespace, never interpreted by a shell (required)
}

// RunCommandOutput contains the result of a command that was started.
// A non-zero ExitCode is reported here, not as an error.
// Fields are ordered to minimize memory padding.
type RunCommandOutput struct {
	Verb      string
	Args      []string
	Output    []byte // Combined stdout and stderr
	ExitCode  int
	Truncated bool
}

// RunCommand is the use case for executing a command whose verb is allow-listed.
// Fields are ordered to minimize memory padding.
type RunCommand struct {
	executor domain.CommandExecutor
	history  *shared.HistoryRecorder
	logger   domain.Logger
	allow    domain.AllowList
	dir      string
}

// NewRunCommand creates a new RunCommand use case.
// dir is the working directory for commands; empty means the current directory.
func NewRunCommand(
	executor domain.CommandExecutor,
	allow domain.AllowList,
	dir string,
	history *shared.HistoryRecorder,
	logger domain.Logger,
) *RunCommand {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RunCommand{
		executor: executor,
		allow:    allow,
		dir:      dir,
		history:  history,
		logger:   logger,
	}
}

// Execute checks the command's verb against the allow-list and runs it.
// The executor is not called for a rejected verb.
func (uc *RunCommand) Execute(ctx context.Context, in RunCommandInput) (*RunCommandOutput, error) {
	parsed := domain.ParseCommand(in.Command)
	entry := domain.HistoryEntry{Kind: domain.KindRun, Input: in.Command}

	if !uc.allow.Allows(parsed.Verb) {
		err := &domain.CommandNotAllowedError{Verb: parsed.Verb}
		uc.logger.Warn("run", err.Error())
		entry.Error = err.Error()
		uc.history.Record(entry)
		return nil, err
	}

	res, err := uc.executor.Execute(ctx, domain.NewCommand(parsed.Verb, parsed.Args, uc.dir))
	if err != nil {
		uc.logger.Error("run", err.Error())
		entry.Error = err.Error()
		uc.history.Record(entry)
		return nil, err
	}

	uc.logger.Info("run", fmt.Sprintf("%s exited with status %d", parsed.Verb, res.ExitCode))
	entry.ExitCode = res.ExitCode
	entry.Result = summarize(res.Output)
	uc.history.Record(entry)

	return &RunCommandOutput{
		Verb:      parsed.Verb,
		Args:      parsed.Args,
		Output:    res.Output,
		ExitCode:  res.ExitCode,
		Truncated: res.Truncated,
	}, nil
}

// maxSummary bounds the command output stored in history.
const maxSummary = 200

// summarize returns the start of output for the history log.
// The cut never splits a UTF-8 sequence.
func summarize(output []byte) string {
	if len(output) <= maxSummary {
		return string(output)
	}
	cut := maxSummary
	for cut > 0 && !utf8.RuneStart(output[cut]) {
		cut--
	}
	return string(output[:cut]) + "..."
}
