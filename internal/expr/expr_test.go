package expr

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2+2", 4},
		{"3*4-2", 10},
		{"(1+2)*3", 9},
		{"2+3*4", 14},
		{"10/4", 2.5},
		{"8/2/2", 2},
		{"10-2-3", 5},
		{"-3+5", 2},
		{"2*-3", -6},
		{"--2", 2},
		{"+7", 7},
		{"1.5*2", 3},
		{".5+.5", 1},
		{"5.", 5},
		{"((2))", 2},
		{" 7 \n", 7},
		{"\t(1 + 2) * (3 + 4) / 7", 3},
		{"0/5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluate_FloatingPointDivision(t *testing.T) {
	got, err := Evaluate("1/3")
	require.NoError(t, err)
	assert.InDelta(t, 0.3333333333, got, 1e-9)

	got, err = Evaluate("7/2")
	require.NoError(t, err)
	assert.Equal(t, 3.5, got, "division must not truncate to an integer")
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	for _, input := range []string{"10/0", "1/(2-2)", "0/0", "5/0.0"} {
		t.Run(input, func(t *testing.T) {
			_, err := Evaluate(input)
			assert.ErrorIs(t, err, domain.ErrDivisionByZero)
		})
	}
}

func TestEvaluate_Overflow(t *testing.T) {
	big := "1" + strings.Repeat("0", 300)

	_, err := Evaluate(big + "*" + big)
	assert.ErrorIs(t, err, domain.ErrNumericOverflow)

	_, err = Evaluate("1" + strings.Repeat("0", 400))
	assert.ErrorIs(t, err, domain.ErrNumericOverflow)
}

func TestEvaluate_IntermediateOverflow(t *testing.T) {
	big := "1" + strings.Repeat("0", 300)
	maxFloat := "17976931348623157" + strings.Repeat("0", 292)

	tests := []struct {
		name  string
		input string
	}{
		{"divided back to finite", "1/(" + big + "*" + big + ")"},
		{"multiplied by zero", "(" + big + "*" + big + ")*0"},
		{"sum subtracted back", "(" + maxFloat + "+" + maxFloat + ")-" + maxFloat},
		{"division by small value", big + "/0.0000000001*0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Evaluate(tt.input)
			assert.ErrorIs(t, err, domain.ErrNumericOverflow)
			assert.Zero(t, v)
		})
	}
}

func TestEvaluate_DisallowedCharacters(t *testing.T) {
	tests := []struct {
		input   string
		wantPos int
	}{
		{"2+a", 2},
		{"1;2", 1},
		{"__import__('os').system('ls')", 0},
		{"1e3", 1},
		{"2^3", 1},
		{"x", 0},
		{"1,5", 1},
		{"２+2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.ErrorIs(t, err, domain.ErrInvalidExpression)

			var ie *domain.InvalidExpressionError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.wantPos, ie.Pos)
			assert.Contains(t, ie.Reason, "is not allowed")
		})
	}
}

func TestEvaluate_EveryDisallowedASCIICharacterFailsValidation(t *testing.T) {
	for c := rune(0); c < 128; c++ {
		if isAllowed(c) {
			continue
		}
		input := "1+" + string(c) + "1"
		_, err := Evaluate(input)

		var ie *domain.InvalidExpressionError
		require.True(t, errors.As(err, &ie), "input %q", input)
		assert.Contains(t, ie.Reason, "is not allowed", "input %q", input)
		assert.Equal(t, 2, ie.Pos, "input %q", input)
	}
}

func TestEvaluate_MalformedStructure(t *testing.T) {
	tests := []struct {
		input      string
		wantReason string
	}{
		{"", "empty expression"},
		{"   ", "empty expression"},
		{"(1+2", "missing closing parenthesis"},
		{"1+2)", "unmatched ')'"},
		{"()", "unexpected ')'"},
		{"1.2.3", "malformed number"},
		{".", "malformed number"},
		{"1 2", "unexpected number"},
		{"+", "unexpected end of expression"},
		{"2*", "unexpected end of expression"},
		{"2**3", "unexpected '*'"},
		{"(1)(2)", "unexpected '('"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.ErrorIs(t, err, domain.ErrInvalidExpression)
			assert.Contains(t, err.Error(), tt.wantReason)
		})
	}
}

func TestEvaluate_DeepNesting(t *testing.T) {
	input := strings.Repeat("(", maxDepth+1) + "1" + strings.Repeat(")", maxDepth+1)
	_, err := Evaluate(input)
	require.ErrorIs(t, err, domain.ErrInvalidExpression)
	assert.Contains(t, err.Error(), "nested too deeply")

	input = strings.Repeat("(", maxDepth) + "1" + strings.Repeat(")", maxDepth)
	got, err := Evaluate(input)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	_, err = Evaluate(strings.Repeat("-", maxDepth+1) + "1")
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("1 + (2 * 3) / 4.5 - 6"))
	assert.ErrorIs(t, Validate(""), domain.ErrInvalidExpression)
	assert.ErrorIs(t, Validate("os"), domain.ErrInvalidExpression)
	// Validation only checks characters; structure is checked by Evaluate.
	assert.NoError(t, Validate("(((("))
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{-6, "-6"},
		{2.5, "2.5"},
		{math.Copysign(0, -1), "0"},
		{1e20, "1e+20"},
		{0.1 + 0.2, "0.30000000000000004"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.in))
		})
	}
}
