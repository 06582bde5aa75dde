// Package expr evaluates a restricted arithmetic language.
//
// The language has number literals, the four operators + - * /, unary
// sign and parentheses. Input is checked against the allowed character
// class before any parsing happens, and evaluation is done by a small
// recursive-descent parser; no general interpreter is involved.
package expr

import (
	"math"
	"regexp"
	"strconv"

	"github.com/runoshun/guardkit/internal/domain"
)

// allowedPattern matches an expression made only of allowed characters.
var allowedPattern = regexp.MustCompile(`^[0-9+\-*/().\s]+$`)

// Validate checks that expression is non-empty and uses only digits,
// operators, parentheses, dots and whitespace.
func Validate(expression string) error {
	if expression == "" {
		return invalid(expression, "empty expression", -1)
	}
	if allowedPattern.MatchString(expression) {
		return nil
	}
	for i, r := range expression {
		if !isAllowed(r) {
			return invalid(expression, "character "+strconv.QuoteRune(r)+" is not allowed", i)
		}
	}
	// Unreachable unless isAllowed and allowedPattern disagree.
	return invalid(expression, "contains characters outside [0-9+-*/(). ]", -1)
}

// Evaluate validates expression and computes its value.
//
// Division by zero returns domain.ErrDivisionByZero and results that are
// not finite return domain.ErrNumericOverflow. Structural problems return a
// *domain.InvalidExpressionError.
func Evaluate(expression string) (float64, error) {
	if err := Validate(expression); err != nil {
		return 0, err
	}

	tokens, err := tokenize(expression)
	if err != nil {
		return 0, err
	}

	p := &parser{src: expression, tokens: tokens}
	v, err := p.parse()
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, domain.ErrNumericOverflow
	}
	return v, nil
}

// FormatResult renders v without a fractional part when it is a whole number.
func FormatResult(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		if v == 0 {
			// Avoid "-0".
			return "0"
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func invalid(expression, reason string, pos int) error {
	return &domain.InvalidExpressionError{
		Expression: expression,
		Reason:     reason,
		Pos:        pos,
	}
}

// isAllowed mirrors allowedPattern for a single rune. \s in RE2 is [\t\n\f\r ].
func isAllowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case isSpace(r):
		return true
	}
	switch r {
	case '+', '-', '*', '/', '(', ')', '.':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
