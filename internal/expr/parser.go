package expr

import (
	"math"

	"github.com/runoshun/guardkit/internal/domain"
)

// maxDepth bounds nesting of parentheses and unary signs.
const maxDepth = 256

// parser evaluates tokens with the grammar:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
type parser struct {
	src    string
	tokens []token
	pos    int
	depth  int
}

func (p *parser) parse() (float64, error) {
	if p.peek().kind == tokEOF {
		return 0, invalid(p.src, "empty expression", -1)
	}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	tok := p.peek()
	switch tok.kind {
	case tokEOF:
		return v, nil
	case tokRParen:
		return 0, invalid(p.src, "unmatched ')'", tok.pos)
	default:
		return 0, p.unexpected(tok)
	}
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.kind != tokPlus && op.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op.kind == tokPlus {
			left += right
		} else {
			left -= right
		}
		if math.IsInf(left, 0) {
			return 0, domain.ErrNumericOverflow
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.kind != tokStar && op.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op.kind == tokStar {
			left *= right
		} else {
			if right == 0 {
				return 0, domain.ErrDivisionByZero
			}
			left /= right
		}
		// An infinite intermediate must not be folded back into a finite result.
		if math.IsInf(left, 0) {
			return 0, domain.ErrNumericOverflow
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	tok := p.peek()
	if tok.kind != tokPlus && tok.kind != tokMinus {
		return p.parsePrimary()
	}
	if err := p.enter(tok); err != nil {
		return 0, err
	}
	defer p.leave()

	p.next()
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if tok.kind == tokMinus {
		return -v, nil
	}
	return v, nil
}

func (p *parser) parsePrimary() (float64, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return tok.value, nil
	case tokLParen:
		if err := p.enter(tok); err != nil {
			return 0, err
		}
		defer p.leave()

		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing := p.next()
		if closing.kind != tokRParen {
			if closing.kind == tokEOF {
				return 0, invalid(p.src, "missing closing parenthesis for '('", tok.pos)
			}
			return 0, p.unexpected(closing)
		}
		return v, nil
	case tokEOF:
		return 0, invalid(p.src, "unexpected end of expression, expected number or '('", tok.pos)
	default:
		return 0, p.unexpected(tok)
	}
}

func (p *parser) enter(tok token) error {
	p.depth++
	if p.depth > maxDepth {
		return invalid(p.src, "expression nested too deeply", tok.pos)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) unexpected(tok token) error {
	return invalid(p.src, "unexpected "+tok.kind.String(), tok.pos)
}
