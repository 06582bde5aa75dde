package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/guardkit/internal/domain"
)

// ClearHistoryInput contains the parameters for clearing history.
type ClearHistoryInput struct{}

// ClearHistoryOutput contains the result of clearing history.
type ClearHistoryOutput struct {
	Removed int
}

// ClearHistory is the use case for removing all history entries.
type ClearHistory struct {
	history domain.HistoryRepository
	logger  domain.Logger
}

// NewClearHistory creates a new ClearHistory use case.
func NewClearHistory(history domain.HistoryRepository, logger domain.Logger) *ClearHistory {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &ClearHistory{history: history, logger: logger}
}

// Execute clears the history store.
func (uc *ClearHistory) Execute(_ context.Context, _ ClearHistoryInput) (*ClearHistoryOutput, error) {
	n, err := uc.history.Clear()
	if err != nil {
		return nil, fmt.Errorf("clear history: %w", err)
	}
	uc.logger.Info("history", fmt.Sprintf("cleared %d entries", n))
	return &ClearHistoryOutput{Removed: n}, nil
}
