// internal/guard/condition.go

// Package guard implements the boolean guard algebra used during adaptive
// parsing to decide under which runtime condition a grammar alternative is
// valid.
//
// A Condition is either a leaf (Predicate, PrecedencePredicate), the
// AlwaysTrue sentinel, or a combinator (Conjunction, Disjunction). All
// values are immutable after construction and safe to share across
// concurrent parse attempts without synchronization; they are intended for
// use as cache keys, so structurally equal conditions compare equal and
// hash identically regardless of how they were built.
//
// Combination must go through the And/Or factories, which maintain the
// canonical form: same-kind nodes are flattened, duplicates removed, at
// most one precedence predicate survives per node, and single-operand
// nodes collapse to the operand itself.
package guard

import "strconv"

// ExecutionContext is the caller-supplied scope passed through to
// context-dependent predicate tests. The algebra never inspects it.
type ExecutionContext interface{}

// Recognizer provides the two primitive tests the algebra cannot evaluate
// itself. Implementations own the grammar-specific predicate code and the
// precedence state of the in-flight parse.
type Recognizer interface {
	// SemanticPredicate evaluates the grammar-declared boolean test
	// identified by (ruleIndex, predIndex). ctx is nil for
	// context-independent predicates. Must return true for the
	// AlwaysTrue sentinel triple (-1, -1).
	SemanticPredicate(ctx ExecutionContext, ruleIndex, predIndex int) bool

	// Precedence reports whether the ambient precedence permits
	// continuing at the given threshold.
	Precedence(ctx ExecutionContext, precedence int) bool
}

// Condition is a boolean guard over recognizer state. The variant set is
// closed: Predicate, PrecedencePredicate, Conjunction, Disjunction, plus
// the AlwaysTrue sentinel (itself a Predicate).
//
// A nil Condition is the single overloaded sentinel of the algebra: as an
// input to And/Or it means "no condition yet" (the identity), while as a
// result of SimplifyPrecedence it means "statically false". Both meanings
// share one value on purpose; see the factory and simplification doc
// comments for which applies where.
type Condition interface {
	// Evaluate resolves the guard against live recognizer state.
	// Combinator evaluation is short-circuiting but unordered; operand
	// tests must tolerate being skipped.
	Evaluate(rec Recognizer, ctx ExecutionContext) bool

	// SimplifyPrecedence partially resolves the guard once the current
	// precedence is known. Precedence predicates are fully resolved by
	// this pass; semantic predicates are untouched. Returns the receiver
	// unchanged when nothing resolved, AlwaysTrue when the guard became
	// statically true, and nil when it became statically false.
	SimplifyPrecedence(rec Recognizer, ctx ExecutionContext) Condition

	// Hash returns a structural hash consistent with Equals.
	Hash() uint32

	// Equals reports structural equality, ignoring operand order.
	Equals(other Condition) bool

	// String renders the guard for diagnostics. Stable for a given
	// instance; structurally equal conditions render identically.
	String() string

	isCondition()
}

// Predicate wraps a reference to one grammar-declared boolean test.
// Identity is the (ruleIndex, predIndex, ctxDependent) triple.
type Predicate struct {
	ruleIndex    int
	predIndex    int
	ctxDependent bool
}

// NewPredicate builds a semantic predicate leaf. ctxDependent marks tests
// that read the caller's scope (e.g. local/argument references); only
// those receive the outer context at evaluation time.
func NewPredicate(ruleIndex, predIndex int, ctxDependent bool) *Predicate {
	return &Predicate{ruleIndex: ruleIndex, predIndex: predIndex, ctxDependent: ctxDependent}
}

// AlwaysTrue is the canonical condition that is always satisfied; the
// identity element for conjunction. Recognizers must treat its (-1, -1)
// triple as unconditionally true.
var AlwaysTrue Condition = NewPredicate(-1, -1, false)

// RuleIndex returns the grammar rule the predicate belongs to.
func (p *Predicate) RuleIndex() int { return p.ruleIndex }

// PredIndex returns the predicate's index within its rule.
func (p *Predicate) PredIndex() int { return p.predIndex }

// ContextDependent reports whether the test reads the caller's scope.
func (p *Predicate) ContextDependent() bool { return p.ctxDependent }

// Evaluate delegates to the recognizer. Context-independent predicates
// receive a nil context; their truth must not depend on caller-side scope.
func (p *Predicate) Evaluate(rec Recognizer, ctx ExecutionContext) bool {
	var local ExecutionContext
	if p.ctxDependent {
		local = ctx
	}
	return rec.SemanticPredicate(local, p.ruleIndex, p.predIndex)
}

// SimplifyPrecedence is a no-op: a semantic predicate depends on live
// recognition state, not on precedence.
func (p *Predicate) SimplifyPrecedence(rec Recognizer, ctx ExecutionContext) Condition {
	return p
}

func (p *Predicate) Hash() uint32 {
	h := murmurInit(0)
	h = murmurUpdate(h, uint32(p.ruleIndex))
	h = murmurUpdate(h, uint32(p.predIndex))
	if p.ctxDependent {
		h = murmurUpdate(h, 1)
	} else {
		h = murmurUpdate(h, 0)
	}
	return murmurFinish(h, 3)
}

func (p *Predicate) Equals(other Condition) bool {
	o, ok := other.(*Predicate)
	if !ok {
		return false
	}
	return p.ruleIndex == o.ruleIndex &&
		p.predIndex == o.predIndex &&
		p.ctxDependent == o.ctxDependent
}

// String renders "{rule:pred}?", with a trailing '*' for context-dependent
// predicates so the rendering round-trips through the expression parser.
func (p *Predicate) String() string {
	s := "{" + strconv.Itoa(p.ruleIndex) + ":" + strconv.Itoa(p.predIndex) + "}?"
	if p.ctxDependent {
		s += "*"
	}
	return s
}

func (p *Predicate) isCondition() {}

// isAlwaysTrue reports whether c is structurally the AlwaysTrue sentinel.
// Structural rather than identity comparison: independently built
// Predicate(-1, -1, false) leaves behave identically to the singleton.
func isAlwaysTrue(c Condition) bool {
	return c == AlwaysTrue || AlwaysTrue.Equals(c)
}
