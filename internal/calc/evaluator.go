package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

var (
	ErrEmptyExpression = errors.New("expression vide")
	ErrNumberExpected  = errors.New("nombre attendu")
	ErrMissingParen    = errors.New("parenthèse manquante")
	ErrInvalidResult   = errors.New("résultat invalide")
)

// parser walks the expression with an explicit cursor so evaluation is
// reentrant and never shares state between calls.
type parser struct {
	input string
	pos   int
}

// Evaluate computes an arithmetic expression over integer literals.
// Grammar:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := '+' factor | '-' factor | '(' expr ')' | integer
//
// Every failure returns a structured error; Evaluate never panics.
func Evaluate(expr string) (float64, error) {
	p := &parser{input: expr}
	p.skipSpaces()
	if p.eof() {
		return 0, ErrEmptyExpression
	}

	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpaces()
	if !p.eof() {
		r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
		return 0, fmt.Errorf("caractère inattendu: %c", r)
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrInvalidResult
	}
	return value, nil
}

func (p *parser) parseExpr() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			term, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value += term
		case '-':
			p.pos++
			term, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= term
		default:
			return value, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '*':
			p.pos++
			factor, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			value *= factor
		case '/':
			p.pos++
			factor, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			value /= factor
		default:
			return value, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	p.skipSpaces()
	switch p.peek() {
	case '+':
		p.pos++
		return p.parseFactor()
	case '-':
		p.pos++
		value, err := p.parseFactor()
		return -value, err
	case '(':
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return 0, ErrMissingParen
		}
		p.pos++
		return value, nil
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, ErrNumberExpected
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, ErrNumberExpected
	}
	return value, nil
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}
