package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/testutil"
	"github.com/runoshun/guardkit/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededHistory() *testutil.MockHistoryRepository {
	repo := testutil.NewMockHistoryRepository()
	repo.Entries = []domain.HistoryEntry{
		{ID: "1", Kind: domain.KindEval, Input: "1+1", Result: "2"},
		{ID: "2", Kind: domain.KindRun, Input: "echo hi", Result: "hi\n"},
		{ID: "3", Kind: domain.KindEval, Input: "2*3", Result: "6"},
	}
	return repo
}

func ids(entries []domain.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestListHistory_Execute(t *testing.T) {
	tests := []struct {
		name string
		in   usecase.ListHistoryInput
		want []string
	}{
		{"all newest first", usecase.ListHistoryInput{}, []string{"3", "2", "1"}},
		{"eval only", usecase.ListHistoryInput{Kind: "eval"}, []string{"3", "1"}},
		{"run only", usecase.ListHistoryInput{Kind: "run"}, []string{"2"}},
		{"limit", usecase.ListHistoryInput{Limit: 2}, []string{"3", "2"}},
		{"kind and limit", usecase.ListHistoryInput{Kind: "eval", Limit: 1}, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewListHistory(seededHistory())

			out, err := uc.Execute(context.Background(), tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(out.Entries))
		})
	}
}

func TestListHistory_Execute_Empty(t *testing.T) {
	uc := usecase.NewListHistory(testutil.NewMockHistoryRepository())

	out, err := uc.Execute(context.Background(), usecase.ListHistoryInput{})

	require.NoError(t, err)
	assert.NotNil(t, out.Entries)
	assert.Empty(t, out.Entries)
}

func TestListHistory_Execute_InvalidInput(t *testing.T) {
	uc := usecase.NewListHistory(seededHistory())

	_, err := uc.Execute(context.Background(), usecase.ListHistoryInput{Kind: "shell"})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	_, err = uc.Execute(context.Background(), usecase.ListHistoryInput{Limit: -1})
	assert.ErrorContains(t, err, "limit must not be negative")
}

func TestListHistory_Execute_RepositoryError(t *testing.T) {
	repo := testutil.NewMockHistoryRepository()
	repo.ListErr = errors.New("corrupt store")
	uc := usecase.NewListHistory(repo)

	_, err := uc.Execute(context.Background(), usecase.ListHistoryInput{})

	assert.ErrorContains(t, err, "list history: corrupt store")
}

func TestClearHistory_Execute(t *testing.T) {
	repo := seededHistory()
	logger := &testutil.MockLogger{}
	uc := usecase.NewClearHistory(repo, logger)

	out, err := uc.Execute(context.Background(), usecase.ClearHistoryInput{})

	require.NoError(t, err)
	assert.Equal(t, 3, out.Removed)
	assert.Empty(t, repo.Entries)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "cleared 3 entries", logger.Entries[0].Msg)
}

func TestClearHistory_Execute_Error(t *testing.T) {
	repo := seededHistory()
	repo.ClearErr = errors.New("locked")
	uc := usecase.NewClearHistory(repo, nil)

	out, err := uc.Execute(context.Background(), usecase.ClearHistoryInput{})

	assert.Nil(t, out)
	assert.ErrorContains(t, err, "clear history: locked")
	assert.Len(t, repo.Entries, 3)
}
