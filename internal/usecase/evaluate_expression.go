// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/expr"
	"github.com/runoshun/guardkit/internal/usecase/shared"
)

// EvaluateExpressionInput contains the parameters for evaluating an expression.
type EvaluateExpressionInput struct {
	Expression string // Arithmetic expression (required)
}

// EvaluateExpressionOutput contains the result of an evaluation.
type EvaluateExpressionOutput struct {
	Formatted string // Value rendered for display
	Value     float64
}

// EvaluateExpression is the use case for validating and evaluating an arithmetic expression.
type EvaluateExpression struct {
	history *shared.HistoryRecorder
	logger  domain.Logger
}

// NewEvaluateExpression creates a new EvaluateExpression use case.
func NewEvaluateExpression(history *shared.HistoryRecorder, logger domain.Logger) *EvaluateExpression {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &EvaluateExpression{
		history: history,
		logger:  logger,
	}
}

// Execute evaluates the expression. Invalid input is rejected before any parsing.
func (uc *EvaluateExpression) Execute(_ context.Context, in EvaluateExpressionInput) (*EvaluateExpressionOutput, error) {
	entry := domain.HistoryEntry{Kind: domain.KindEval, Input: in.Expression}

	v, err := expr.Evaluate(in.Expression)
	if err != nil {
		uc.logger.Warn("eval", fmt.Sprintf("rejected %q: %v", in.Expression, err))
		entry.Error = err.Error()
		uc.history.Record(entry)
		return nil, err
	}

	out := &EvaluateExpressionOutput{
		Value:     v,
		Formatted: expr.FormatResult(v),
	}
	uc.logger.Debug("eval", fmt.Sprintf("%q = %s", in.Expression, out.Formatted))
	entry.Result = out.Formatted
	uc.history.Record(entry)
	return out, nil
}
