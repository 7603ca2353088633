// SPDX-License-Identifier: MIT

package gca

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/gcalg/index"
	"github.com/katalvlaran/gcalg/ring"
)

// tokenKind classifies lexer tokens.
type tokenKind int

const (
	tokNum tokenKind = iota
	tokName
	tokMul
	tokPow
	tokPlus
	tokMinus
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits s into tokens. Both "*" and the algebra's multiplication
// symbol are accepted as products; whitespace is ignored.
func (a *Algebra[T]) lex(s string) ([]token, error) {
	var out []token
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '*':
			out = append(out, token{kind: tokMul, text: "*", pos: i})
			i += size
		case strings.HasPrefix(s[i:], a.mulSymbol):
			out = append(out, token{kind: tokMul, text: a.mulSymbol, pos: i})
			i += len(a.mulSymbol)
		case r == '^':
			out = append(out, token{kind: tokPow, text: "^", pos: i})
			i += size
		case r == '+':
			out = append(out, token{kind: tokPlus, text: "+", pos: i})
			i += size
		case r == '-':
			out = append(out, token{kind: tokMinus, text: "-", pos: i})
			i += size
		case r >= '0' && r <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			out = append(out, token{kind: tokNum, text: s[i:j], pos: i})
			i = j
		case r == '_' || unicode.IsLetter(r):
			j := i
			for j < len(s) {
				c, n := utf8.DecodeRuneInString(s[j:])
				if c != '_' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
					break
				}
				j += n
			}
			out = append(out, token{kind: tokName, text: s[i:j], pos: i})
			i = j
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d: %w", r, i, ErrBadExpression)
		}
	}

	return append(out, token{kind: tokEOF, pos: len(s)}), nil
}

// parser is a recursive-descent parser over lexed tokens.
type parser[T any] struct {
	alg  *Algebra[T]
	toks []token
	at   int
}

func (p *parser[T]) peek() token { return p.toks[p.at] }

func (p *parser[T]) next() token {
	t := p.toks[p.at]
	if t.kind != tokEOF {
		p.at++
	}

	return t
}

func (p *parser[T]) unexpected(t token) error {
	if t.kind == tokEOF {
		return fmt.Errorf("unexpected end of input: %w", ErrBadExpression)
	}

	return fmt.Errorf("unexpected %q at offset %d: %w", t.text, t.pos, ErrBadExpression)
}

// exponent parses an optional "^n" suffix; absent means 1.
func (p *parser[T]) exponent() (int, error) {
	if p.peek().kind != tokPow {
		return 1, nil
	}
	p.next()
	t := p.next()
	if t.kind != tokNum {
		return 0, p.unexpected(t)
	}
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, fmt.Errorf("exponent %q: %w", t.text, ErrBadExpression)
	}

	return n, nil
}

// factor := NUM | NAME ['^' NUM]
func (p *parser[T]) factor() (Element[T], error) {
	a := p.alg
	t := p.next()
	switch t.kind {
	case tokNum:
		n, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return Element[T]{}, fmt.Errorf("integer %q: %w", t.text, ErrBadExpression)
		}
		return a.Scale(ring.Lift(a.Ring(), n), a.Identity()), nil
	case tokName:
		g, err := a.GeneratorByName(t.text)
		if err != nil {
			return Element[T]{}, err
		}
		k, err := p.exponent()
		if err != nil {
			return Element[T]{}, err
		}
		return a.Pow(g, k), nil
	default:
		return Element[T]{}, p.unexpected(t)
	}
}

// term := factor (MUL factor)*
func (p *parser[T]) term() (Element[T], error) {
	acc, err := p.factor()
	if err != nil {
		return Element[T]{}, err
	}
	for p.peek().kind == tokMul {
		p.next()
		f, err := p.factor()
		if err != nil {
			return Element[T]{}, err
		}
		acc = p.alg.Mul(acc, f)
	}

	return acc, nil
}

// expr := ['-'] term (('+'|'-') term)*
func (p *parser[T]) expr() (Element[T], error) {
	a := p.alg
	acc := a.Zero()
	negate := false
	if p.peek().kind == tokMinus {
		p.next()
		negate = true
	}
	for {
		t, err := p.term()
		if err != nil {
			return Element[T]{}, err
		}
		if negate {
			t = a.Neg(t)
		}
		acc = a.Add(acc, t)

		switch p.peek().kind {
		case tokPlus:
			negate = false
		case tokMinus:
			negate = true
		case tokEOF:
			return acc, nil
		default:
			return Element[T]{}, p.unexpected(p.peek())
		}
		p.next()
	}
}

// ParseElement parses a polynomial expression in the generators, e.g.
// "2*x*y - z*x + 3". Products are evaluated in the algebra, so "x^2" with
// odd x and "z*x" (= -x*z) follow the graded sign rules.
// Errors: ErrBadExpression, ErrUnknownGenerator.
func (a *Algebra[T]) ParseElement(s string) (Element[T], error) {
	toks, err := a.lex(s)
	if err != nil {
		return Element[T]{}, err
	}
	p := &parser[T]{alg: a, toks: toks}

	return p.expr()
}

// ParseMonomial parses a single monomial such as "x*y^2*z" or "1" into its
// exponent vector. Repeated generators add up ("x*x" → [2 0 …]); the
// vector is not checked against the basis, see BasisElement.
// Errors: ErrBadExpression, ErrUnknownGenerator.
func (a *Algebra[T]) ParseMonomial(s string) (index.Vector, error) {
	toks, err := a.lex(s)
	if err != nil {
		return nil, err
	}
	w := index.Zero(len(a.gens))
	if len(toks) == 2 && toks[0].kind == tokNum && toks[0].text == "1" {
		return w, nil
	}

	p := &parser[T]{alg: a, toks: toks}
	for {
		t := p.next()
		if t.kind != tokName {
			return nil, p.unexpected(t)
		}
		i, ok := a.byName[t.text]
		if !ok {
			return nil, fmt.Errorf("%q: %w", t.text, ErrUnknownGenerator)
		}
		k, err := p.exponent()
		if err != nil {
			return nil, err
		}
		w[i] += k

		switch t := p.next(); t.kind {
		case tokEOF:
			return w, nil
		case tokMul:
		default:
			return nil, p.unexpected(t)
		}
	}
}
