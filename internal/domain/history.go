package domain

import "time"

// HistoryKind identifies which utility produced a history entry.
type HistoryKind string

// History kinds.
const (
	KindEval HistoryKind = "eval"
	KindRun  HistoryKind = "run"
)

// ParseHistoryKind parses s into a HistoryKind. The empty string means all kinds.
func ParseHistoryKind(s string) (HistoryKind, error) {
	switch HistoryKind(s) {
	case "", KindEval, KindRun:
		return HistoryKind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

// HistoryEntry records one evaluation or command run.
// Fields are ordered to minimize memory padding.
type HistoryEntry struct {
	CreatedAt time.Time   `json:"createdAt" yaml:"createdAt"`
	ID        string      `json:"id" yaml:"id"`
	Kind      HistoryKind `json:"kind" yaml:"kind"`
	Input     string      `json:"input" yaml:"input"`
	Result    string      `json:"result,omitempty" yaml:"result,omitempty"`
	Error     string      `json:"error,omitempty" yaml:"error,omitempty"`
	ExitCode  int         `json:"exitCode" yaml:"exitCode"`
}

// Failed reports whether the entry recorded an error.
func (e HistoryEntry) Failed() bool {
	return e.Error != ""
}
