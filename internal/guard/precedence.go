// internal/guard/precedence.go
package guard

import "strconv"

// PrecedencePredicate guards a grammar alternative behind an integer
// precedence threshold, used for operator-precedence climbing in
// left-recursive rules. Totally ordered by threshold; equality by value.
type PrecedencePredicate struct {
	precedence int
}

// NewPrecedencePredicate builds a precedence leaf for the given threshold.
func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{precedence: precedence}
}

// Threshold returns the precedence value the guard tests against.
func (p *PrecedencePredicate) Threshold() int { return p.precedence }

// CompareTo orders precedence predicates by ascending threshold.
func (p *PrecedencePredicate) CompareTo(other *PrecedencePredicate) int {
	return p.precedence - other.precedence
}

// Evaluate delegates to the recognizer's precedence test.
func (p *PrecedencePredicate) Evaluate(rec Recognizer, ctx ExecutionContext) bool {
	return rec.Precedence(ctx, p.precedence)
}

// SimplifyPrecedence resolves the guard immediately: the precedence test
// needs no later semantic evaluation. Returns AlwaysTrue when the ambient
// precedence permits continuing, nil (the false sentinel) when it does not.
func (p *PrecedencePredicate) SimplifyPrecedence(rec Recognizer, ctx ExecutionContext) Condition {
	if rec.Precedence(ctx, p.precedence) {
		return AlwaysTrue
	}
	return nil
}

func (p *PrecedencePredicate) Hash() uint32 {
	h := uint32(1)
	h = 31*h + uint32(p.precedence)
	return h
}

func (p *PrecedencePredicate) Equals(other Condition) bool {
	o, ok := other.(*PrecedencePredicate)
	if !ok {
		return false
	}
	return p.precedence == o.precedence
}

func (p *PrecedencePredicate) String() string {
	return "{" + strconv.Itoa(p.precedence) + ">=prec}?"
}

func (p *PrecedencePredicate) isCondition() {}
