package expr

import (
	"math"
	"strconv"

	"github.com/runoshun/guardkit/internal/domain"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "end of expression"
	}
}

type token struct {
	kind  tokenKind
	value float64
	pos   int
}

// tokenize splits an already validated expression into tokens.
// The input is ASCII-only at this point, so byte offsets are positions.
func tokenize(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(rune(c)):
			i++
		case c == '+':
			tokens = append(tokens, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			tokens = append(tokens, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			tokens = append(tokens, token{kind: tokStar, pos: i})
			i++
		case c == '/':
			tokens = append(tokens, token{kind: tokSlash, pos: i})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: i})
			i++
		default:
			tok, next, err := scanNumber(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(src)})
	return tokens, nil
}

// scanNumber reads a literal of digits with at most one dot starting at start.
func scanNumber(src string, start int) (token, int, error) {
	i := start
	digits := 0
	dots := 0
	for i < len(src) {
		c := src[i]
		if c >= '0' && c <= '9' {
			digits++
		} else if c == '.' {
			dots++
			if dots > 1 {
				return token{}, 0, invalid(src, "malformed number", start)
			}
		} else {
			break
		}
		i++
	}
	if digits == 0 {
		return token{}, 0, invalid(src, "malformed number", start)
	}
	v, err := strconv.ParseFloat(src[start:i], 64)
	if err != nil {
		if math.IsInf(v, 0) {
			return token{}, 0, domain.ErrNumericOverflow
		}
		return token{}, 0, invalid(src, "malformed number", start)
	}
	return token{kind: tokNumber, value: v, pos: start}, i, nil
}
