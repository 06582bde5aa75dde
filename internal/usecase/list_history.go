package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/guardkit/internal/domain"
)

// ListHistoryInput contains the parameters for listing history.
type ListHistoryInput struct {
	Kind  string // "eval", "run" or empty for all
	Limit int    // 0 = no limit
}

// ListHistoryOutput contains the listed entries, newest first.
type ListHistoryOutput struct {
	Entries []domain.HistoryEntry
}

// ListHistory is the use case for listing recorded evaluations and runs.
type ListHistory struct {
	history domain.HistoryRepository
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(history domain.HistoryRepository) *ListHistory {
	return &ListHistory{history: history}
}

// Execute lists history entries.
func (uc *ListHistory) Execute(_ context.Context, in ListHistoryInput) (*ListHistoryOutput, error) {
	kind, err := domain.ParseHistoryKind(in.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (want eval or run)", err, in.Kind)
	}
	if in.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %d", in.Limit)
	}

	entries, err := uc.history.List(domain.HistoryFilter{Kind: kind, Limit: in.Limit})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return &ListHistoryOutput{Entries: entries}, nil
}
