package shared

import (
	"testing"
	"time"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecorder_Record(t *testing.T) {
	repo := testutil.NewMockHistoryRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := NewHistoryRecorder(repo, &testutil.MockClock{NowTime: now}, nil, domain.HistoryConfig{Limit: 7}).
		WithIDGenerator(func() string { return "id-1" })

	rec.Record(domain.HistoryEntry{Kind: domain.KindEval, Input: "1+1", Result: "2"})

	require.Len(t, repo.Entries, 1)
	assert.Equal(t, "id-1", repo.Entries[0].ID)
	assert.Equal(t, now, repo.Entries[0].CreatedAt)
	assert.Equal(t, "2", repo.Entries[0].Result)
	assert.Equal(t, 7, repo.LastKeep)
}

func TestHistoryRecorder_Disabled(t *testing.T) {
	repo := testutil.NewMockHistoryRepository()
	disabled := false
	rec := NewHistoryRecorder(repo, &testutil.MockClock{}, nil, domain.HistoryConfig{Enabled: &disabled})

	rec.Record(domain.HistoryEntry{Kind: domain.KindRun})

	assert.Empty(t, repo.Entries)
}

func TestHistoryRecorder_NilRepoAndNilRecorder(t *testing.T) {
	rec := NewHistoryRecorder(nil, &testutil.MockClock{}, nil, domain.HistoryConfig{})
	rec.Record(domain.HistoryEntry{Kind: domain.KindRun})

	var nilRec *HistoryRecorder
	nilRec.Record(domain.HistoryEntry{Kind: domain.KindRun})
}

func TestHistoryRecorder_AppendErrorIsLogged(t *testing.T) {
	repo := testutil.NewMockHistoryRepository()
	repo.AppendErr = assert.AnError
	logger := &testutil.MockLogger{}
	rec := NewHistoryRecorder(repo, &testutil.MockClock{}, logger, domain.HistoryConfig{})

	rec.Record(domain.HistoryEntry{Kind: domain.KindEval})

	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "warn", logger.Entries[0].Level)
	assert.Contains(t, logger.Entries[0].Msg, "record eval entry")
}

func TestHistoryRecorder_DefaultIDsAreUnique(t *testing.T) {
	repo := testutil.NewMockHistoryRepository()
	rec := NewHistoryRecorder(repo, &testutil.MockClock{}, nil, domain.HistoryConfig{})

	rec.Record(domain.HistoryEntry{Kind: domain.KindEval})
	rec.Record(domain.HistoryEntry{Kind: domain.KindEval})

	require.Len(t, repo.Entries, 2)
	assert.NotEmpty(t, repo.Entries[0].ID)
	assert.NotEqual(t, repo.Entries[0].ID, repo.Entries[1].ID)
}
