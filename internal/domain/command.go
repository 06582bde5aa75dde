package domain

import (
	"slices"
	"strings"
)

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewCommand creates an ExecCommand that runs program with args in dir.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// ExecResult holds the outcome of a command that was started.
// A non-zero ExitCode is not an error.
type ExecResult struct {
	Output    []byte // Combined stdout and stderr
	ExitCode  int
	Truncated bool // Output exceeded the configured cap
}

// ParsedCommand is a command string split on whitespace.
// Verb is the first token; Args holds the rest verbatim.
type ParsedCommand struct {
	Verb string
	Args []string
}

// ParseCommand splits command on whitespace. Quotes and shell
// metacharacters have no special meaning.
func ParseCommand(command string) ParsedCommand {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ParsedCommand{}
	}
	return ParsedCommand{
		Verb: fields[0],
		Args: fields[1:],
	}
}

// AllowList is the set of command verbs that may be executed.
type AllowList struct {
	verbs map[string]struct{}
}

// DefaultAllowedVerbs are used when no configuration overrides them.
var DefaultAllowedVerbs = []string{"date", "echo", "dir", "ls"}

// NewAllowList creates an AllowList from verbs. Blank entries are ignored.
func NewAllowList(verbs []string) AllowList {
	m := make(map[string]struct{}, len(verbs))
	for _, v := range verbs {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		m[v] = struct{}{}
	}
	return AllowList{verbs: m}
}

// Allows reports whether verb is permitted. Matching is exact and
// case-sensitive; the empty verb is never allowed.
func (a AllowList) Allows(verb string) bool {
	if verb == "" {
		return false
	}
	_, ok := a.verbs[verb]
	return ok
}

// Len returns the number of allowed verbs.
func (a AllowList) Len() int {
	return len(a.verbs)
}

// Verbs returns the allowed verbs in sorted order.
func (a AllowList) Verbs() []string {
	out := make([]string, 0, len(a.verbs))
	for v := range a.verbs {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
