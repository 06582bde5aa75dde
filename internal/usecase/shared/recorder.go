// Package shared holds helpers used by several use cases.
package shared

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/runoshun/guardkit/internal/domain"
)

// HistoryRecorder appends history entries when recording is enabled.
// A failed append is logged and never fails the calling operation.
// Fields are ordered to minimize memory padding.
type HistoryRecorder struct {
	repo    domain.HistoryRepository
	clock   domain.Clock
	logger  domain.Logger
	newID   func() string
	keep    int
	enabled bool
}

// NewHistoryRecorder creates a HistoryRecorder. A nil repo disables recording.
func NewHistoryRecorder(repo domain.HistoryRepository, clock domain.Clock, logger domain.Logger, cfg domain.HistoryConfig) *HistoryRecorder {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &HistoryRecorder{
		repo:    repo,
		clock:   clock,
		logger:  logger,
		newID:   uuid.NewString,
		keep:    cfg.Limit,
		enabled: repo != nil && (cfg.Enabled == nil || *cfg.Enabled),
	}
}

// WithIDGenerator replaces the entry ID generator. Used by tests.
func (r *HistoryRecorder) WithIDGenerator(fn func() string) *HistoryRecorder {
	r.newID = fn
	return r
}

// Record stamps entry with an ID and time and appends it.
func (r *HistoryRecorder) Record(entry domain.HistoryEntry) {
	if r == nil || !r.enabled {
		return
	}
	entry.ID = r.newID()
	entry.CreatedAt = r.clock.Now()
	if err := r.repo.Append(entry, r.keep); err != nil {
		r.logger.Warn("history", fmt.Sprintf("record %s entry: %v", entry.Kind, err))
	}
}
