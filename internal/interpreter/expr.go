package interpreter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"
)

// Expression evaluation errors.
var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrSyntax          = errors.New("syntax error")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNotFinite       = errors.New("result is not finite")
	ErrTooDeep         = errors.New("expression nested too deeply")
)

// maxDepth bounds unary and parenthesis nesting.
const maxDepth = 64

// lex is a small arithmetic tokenizer. Identifiers are never scanned, so
// letters surface as single-rune tokens and fail to parse.
type lex struct {
	scanner.Scanner
	token rune
	depth int
	err   error
}

func (l *lex) next() {
	l.token = l.Scan()
}

func (l *lex) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

func (l *lex) unexpected() {
	if l.token == scanner.EOF {
		l.fail(fmt.Errorf("%w: unexpected end of expression", ErrSyntax))
		return
	}
	l.fail(fmt.Errorf("%w: unexpected %q at column %d", ErrSyntax, l.TokenText(), l.Position.Column))
}

func (l *lex) enter() bool {
	l.depth++
	if l.depth > maxDepth {
		l.fail(ErrTooDeep)
		return false
	}
	return true
}

func (l *lex) leave() { l.depth-- }

// EvalExpression evaluates an arithmetic expression made of numbers,
// + - * / ^, parentheses and unary signs. ^ is right-associative and binds
// tighter than a leading minus, so -2^2 is -4. Nothing else is accepted.
func EvalExpression(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, ErrEmptyExpression
	}

	l := &lex{}
	l.Init(strings.NewReader(trimLeadingZeros(expr)))
	l.Mode = scanner.ScanInts | scanner.ScanFloats
	l.Error = func(_ *scanner.Scanner, msg string) {
		l.fail(fmt.Errorf("%w: %s", ErrSyntax, msg))
	}
	l.next()

	v := l.expression()
	if l.err == nil && l.token != scanner.EOF {
		l.unexpected()
	}
	if l.err != nil {
		return 0, l.err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

func (l *lex) expression() float64 {
	v := l.term()
	for l.err == nil {
		switch l.token {
		case '+':
			l.next()
			v += l.term()
		case '-':
			l.next()
			v -= l.term()
		default:
			return v
		}
	}
	return v
}

func (l *lex) term() float64 {
	v := l.unary()
	for l.err == nil {
		switch l.token {
		case '*':
			l.next()
			v *= l.unary()
		case '/':
			l.next()
			d := l.unary()
			if l.err == nil && d == 0 {
				l.fail(ErrDivisionByZero)
				return 0
			}
			v /= d
		default:
			return v
		}
	}
	return v
}

func (l *lex) unary() float64 {
	if !l.enter() {
		return 0
	}
	defer l.leave()

	switch l.token {
	case '-':
		l.next()
		return -l.unary()
	case '+':
		l.next()
		return l.unary()
	}
	return l.power()
}

func (l *lex) power() float64 {
	base := l.primary()
	if l.err != nil || l.token != '^' {
		return base
	}
	l.next()
	return math.Pow(base, l.unary())
}

func (l *lex) primary() float64 {
	switch l.token {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(l.TokenText(), 64)
		if err != nil {
			l.fail(fmt.Errorf("%w: %v", ErrSyntax, err))
			return 0
		}
		l.next()
		return v
	case '(':
		if !l.enter() {
			return 0
		}
		defer l.leave()

		l.next()
		v := l.expression()
		if l.err != nil {
			return 0
		}
		if l.token != ')' {
			l.unexpected()
			return 0
		}
		l.next()
		return v
	}
	l.unexpected()
	return 0
}

// CleanExpression reduces free text to arithmetic characters. × and ÷ become
// * and /, anything outside digits, operators, '.', parentheses and spaces
// is dropped, and spaces are squeezed. ok is false when no digit remains or
// the text has no binary operator.
func CleanExpression(text string) (string, bool) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '×':
			b.WriteByte('*')
		case r == '÷':
			b.WriteByte('/')
		case r >= '0' && r <= '9', strings.ContainsRune("+-*/^.() ", r):
			b.WriteRune(r)
		}
	}

	expr := trimLeadingZeros(strings.Join(strings.Fields(b.String()), " "))
	if !strings.ContainsAny(expr, "0123456789") {
		return "", false
	}
	if !strings.ContainsAny(strings.TrimLeft(expr, "+- ("), "+-*/^") {
		return "", false
	}
	return expr, true
}

// trimLeadingZeros drops leading zeros from the integer part of every
// numeral, so "08" reads as decimal 8 rather than a malformed octal literal.
// Fraction digits are left alone.
func trimLeadingZeros(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		startsInteger := c == '0' && (i == 0 || !isNumeralByte(expr[i-1]))
		if !startsInteger {
			b.WriteByte(c)
			continue
		}
		j := i
		for j+1 < len(expr) && expr[j] == '0' && '0' <= expr[j+1] && expr[j+1] <= '9' {
			j++
		}
		b.WriteByte(expr[j])
		i = j
	}
	return b.String()
}

func isNumeralByte(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}
