package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/testutil"
	"github.com/runoshun/guardkit/internal/usecase"
	"github.com/runoshun/guardkit/internal/usecase/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExpression_Execute(t *testing.T) {
	tests := []struct {
		expr      string
		formatted string
		want      float64
	}{
		{"2+2", "4", 4},
		{"3*4-2", "10", 10},
		{"(1+2)*3", "9", 9},
		{"7/2", "3.5", 3.5},
		{" 10 - 4 ", "6", 6},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			uc := usecase.NewEvaluateExpression(nil, nil)

			out, err := uc.Execute(context.Background(), usecase.EvaluateExpressionInput{Expression: tt.expr})

			require.NoError(t, err)
			assert.InDelta(t, tt.want, out.Value, 1e-12)
			assert.Equal(t, tt.formatted, out.Formatted)
		})
	}
}

func TestEvaluateExpression_Execute_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{"letters", "2+a", domain.ErrInvalidExpression},
		{"shell injection", "1; rm -rf /", domain.ErrInvalidExpression},
		{"empty", "", domain.ErrInvalidExpression},
		{"unbalanced", "(1+2", domain.ErrInvalidExpression},
		{"division by zero", "1/0", domain.ErrDivisionByZero},
		{"division by zero expression", "5/(2-2)", domain.ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &testutil.MockLogger{}
			uc := usecase.NewEvaluateExpression(nil, logger)

			out, err := uc.Execute(context.Background(), usecase.EvaluateExpressionInput{Expression: tt.expr})

			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{"warn"}, logger.Levels())
		})
	}
}

func TestEvaluateExpression_Execute_RecordsHistory(t *testing.T) {
	repo := testutil.NewMockHistoryRepository()
	uc := usecase.NewEvaluateExpression(newTestRecorder(repo), nil)

	_, err := uc.Execute(context.Background(), usecase.EvaluateExpressionInput{Expression: "6*7"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), usecase.EvaluateExpressionInput{Expression: "6/0"})
	require.Error(t, err)

	require.Len(t, repo.Entries, 2)
	assert.Equal(t, domain.HistoryEntry{
		CreatedAt: testNow,
		ID:        "test-id",
		Kind:      domain.KindEval,
		Input:     "6*7",
		Result:    "42",
	}, repo.Entries[0])
	assert.Equal(t, "6/0", repo.Entries[1].Input)
	assert.Empty(t, repo.Entries[1].Result)
	assert.Contains(t, repo.Entries[1].Error, "division by zero")
	assert.True(t, repo.Entries[1].Failed())
}

func TestEvaluateExpression_Execute_HistoryFailureIgnored(t *testing.T) {
	repo := testutil.NewMockHistoryRepository()
	repo.AppendErr = errors.New("disk full")
	logger := &testutil.MockLogger{}
	rec := shared.NewHistoryRecorder(repo, &testutil.MockClock{NowTime: testNow}, logger, domain.HistoryConfig{})
	uc := usecase.NewEvaluateExpression(rec, logger)

	out, err := uc.Execute(context.Background(), usecase.EvaluateExpressionInput{Expression: "1+1"})

	require.NoError(t, err)
	assert.Equal(t, "2", out.Formatted)
	assert.Contains(t, logger.Levels(), "warn")
}
