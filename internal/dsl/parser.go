// internal/dsl/parser.go

// Package dsl parses the textual guard-expression syntax used by the CLI
// and diagnostics. The syntax is exactly the algebra's rendering, so any
// condition round-trips: render -> parse -> structurally equal tree.
//
// Grammar:
//
//	expr   := term ('||' term)*
//	term   := factor ('&&' factor)*
//	factor := '(' expr ')'
//	        | 'true'
//	        | '{' INT ':' INT '}' '?' '*'?     semantic predicate ('*' = context-dependent)
//	        | '{' INT '>=prec' '}' '?'         precedence predicate
//
// Trees are built exclusively through the guard factories, so parsed
// output is always in canonical form.
package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parsekit/semguard/internal/guard"
	"github.com/parsekit/semguard/internal/types"
)

// Parse builds a canonical condition from a guard expression.
// Enforces the expression limits from internal/types at parse time so
// oversized input is rejected before any tree is built.
func Parse(input string) (guard.Condition, error) {
	if len(input) > types.MaxExpressionLength {
		return nil, fmt.Errorf("%w: %d bytes", types.ErrExpressionTooLong, len(input))
	}

	p := &parser{input: input}
	cond, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: trailing input at offset %d", types.ErrSyntax, p.pos)
	}
	return cond, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) expr(depth int) (guard.Condition, error) {
	if depth > types.MaxExpressionDepth {
		return nil, types.ErrExpressionTooDeep
	}

	left, err := p.term(depth)
	if err != nil {
		return nil, err
	}
	for p.consume("||") {
		right, err := p.term(depth)
		if err != nil {
			return nil, err
		}
		left = guard.Or(left, right)
	}
	return left, nil
}

func (p *parser) term(depth int) (guard.Condition, error) {
	left, err := p.factor(depth)
	if err != nil {
		return nil, err
	}
	for p.consume("&&") {
		right, err := p.factor(depth)
		if err != nil {
			return nil, err
		}
		left = guard.And(left, right)
	}
	return left, nil
}

func (p *parser) factor(depth int) (guard.Condition, error) {
	p.skipSpace()

	switch {
	case p.consume("("):
		inner, err := p.expr(depth + 1)
		if err != nil {
			return nil, err
		}
		if !p.consume(")") {
			return nil, fmt.Errorf("%w: missing ')' at offset %d", types.ErrSyntax, p.pos)
		}
		return inner, nil

	case p.consume("true"):
		return guard.AlwaysTrue, nil

	case p.consume("{"):
		return p.leaf()
	}

	return nil, fmt.Errorf("%w: unexpected input at offset %d", types.ErrSyntax, p.pos)
}

// leaf parses the remainder of a predicate after the opening brace:
// "r:p}?" with optional trailing '*', or "n>=prec}?".
func (p *parser) leaf() (guard.Condition, error) {
	first, err := p.integer()
	if err != nil {
		return nil, err
	}

	if p.consume(">=prec") {
		if first < 0 || first > types.MaxPrecedence {
			return nil, fmt.Errorf("%w: %d", types.ErrPrecedenceOutOfRange, first)
		}
		if err := p.closeLeaf(); err != nil {
			return nil, err
		}
		return guard.NewPrecedencePredicate(first), nil
	}

	if !p.consume(":") {
		return nil, fmt.Errorf("%w: expected ':' or '>=prec' at offset %d", types.ErrSyntax, p.pos)
	}
	second, err := p.integer()
	if err != nil {
		return nil, err
	}
	if first > types.MaxRuleIndex {
		return nil, fmt.Errorf("%w: %d", types.ErrRuleIndexOutOfRange, first)
	}
	if second > types.MaxPredIndex {
		return nil, fmt.Errorf("%w: %d", types.ErrPredIndexOutOfRange, second)
	}
	if err := p.closeLeaf(); err != nil {
		return nil, err
	}
	ctxDependent := p.consume("*")
	// The only negative triple with meaning is the (-1, -1) sentinel, and
	// the sentinel is never context-dependent.
	if (first < 0 || second < 0) && (first != -1 || second != -1 || ctxDependent) {
		return nil, fmt.Errorf("%w: negative predicate index {%d:%d}", types.ErrSyntax, first, second)
	}
	return guard.NewPredicate(first, second, ctxDependent), nil
}

func (p *parser) closeLeaf() error {
	if !p.consume("}") {
		return fmt.Errorf("%w: missing '}' at offset %d", types.ErrSyntax, p.pos)
	}
	if !p.consume("?") {
		return fmt.Errorf("%w: missing '?' at offset %d", types.ErrSyntax, p.pos)
	}
	return nil
}

// integer scans an optionally negative decimal literal. Negative values
// admit the AlwaysTrue sentinel rendering "{-1:-1}?".
func (p *parser) integer() (int, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start || p.input[start:p.pos] == "-" {
		return 0, fmt.Errorf("%w: expected integer at offset %d", types.ErrSyntax, start)
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrSyntax, err)
	}
	return n, nil
}

// consume advances past tok when it is next in the input, skipping
// leading whitespace.
func (p *parser) consume(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}
