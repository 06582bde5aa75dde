package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrInvalidExpression = errors.New("invalid expression")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNumericOverflow   = errors.New("numeric overflow")
	ErrCommandNotAllowed = errors.New("command not allowed")
	ErrSpawn             = errors.New("failed to start command")
	ErrConfigExists      = errors.New("config file already exists")
	ErrInvalidKind       = errors.New("invalid history kind")
)

// InvalidExpressionError describes why an expression was rejected.
// Pos is the byte offset of the offending input, or -1 when the whole
// expression is at fault.
type InvalidExpressionError struct {
	Expression string
	Reason     string
	Pos        int
}

func (e *InvalidExpressionError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("invalid expression: %s", e.Reason)
	}
	return fmt.Sprintf("invalid expression: %s at position %d", e.Reason, e.Pos)
}

// Is reports whether target is ErrInvalidExpression.
func (e *InvalidExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// CommandNotAllowedError is returned when a command verb is not in the allow-list.
type CommandNotAllowedError struct {
	Verb string
}

func (e *CommandNotAllowedError) Error() string {
	if e.Verb == "" {
		return "command not allowed: empty command"
	}
	return fmt.Sprintf("command not allowed: %q", e.Verb)
}

// Is reports whether target is ErrCommandNotAllowed.
func (e *CommandNotAllowedError) Is(target error) bool {
	return target == ErrCommandNotAllowed
}

// SpawnError wraps the OS error returned when a process could not be started.
type SpawnError struct {
	Err     error
	Program string
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", e.Program, e.Err)
}

// Is reports whether target is ErrSpawn.
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawn
}

// Unwrap returns the underlying OS error.
func (e *SpawnError) Unwrap() error {
	return e.Err
}
