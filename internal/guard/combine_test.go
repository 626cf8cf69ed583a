// internal/guard/combine_test.go
package guard

import (
	"strings"
	"testing"
)

func TestAnd_IdentityLaws(t *testing.T) {
	x := NewPredicate(1, 0, false)

	tests := []struct {
		name string
		got  Condition
		want Condition
	}{
		{"AlwaysTrue left", And(AlwaysTrue, x), x},
		{"AlwaysTrue right", And(x, AlwaysTrue), x},
		{"nil left", And(nil, x), x},
		{"nil right", And(x, nil), x},
		{"self", And(x, x), x},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v (same instance)", tt.got, tt.want)
			}
		})
	}
}

func TestOr_IdentityLaws(t *testing.T) {
	x := NewPredicate(1, 0, false)

	t.Run("nil left", func(t *testing.T) {
		if got := Or(nil, x); got != x {
			t.Errorf("Or(nil, x) = %v, want x", got)
		}
	})
	t.Run("nil right", func(t *testing.T) {
		if got := Or(x, nil); got != x {
			t.Errorf("Or(x, nil) = %v, want x", got)
		}
	})
	t.Run("AlwaysTrue absorbs left", func(t *testing.T) {
		if got := Or(AlwaysTrue, x); got != AlwaysTrue {
			t.Errorf("Or(AlwaysTrue, x) = %v, want AlwaysTrue", got)
		}
	})
	t.Run("AlwaysTrue absorbs right", func(t *testing.T) {
		if got := Or(x, AlwaysTrue); got != AlwaysTrue {
			t.Errorf("Or(x, AlwaysTrue) = %v, want AlwaysTrue", got)
		}
	})
	t.Run("self", func(t *testing.T) {
		if got := Or(x, x); got != x {
			t.Errorf("Or(x, x) = %v, want x", got)
		}
	})
}

func TestAnd_Flattening(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)
	c := NewPredicate(3, 0, false)

	left := And(And(a, b), c)
	right := And(a, And(b, c))

	node, ok := left.(*Conjunction)
	if !ok {
		t.Fatalf("And(And(a,b), c) is %T, want *Conjunction", left)
	}
	if len(node.Operands()) != 3 {
		t.Errorf("operand count = %d, want 3 (flattened, not nested)", len(node.Operands()))
	}
	for _, op := range node.Operands() {
		if _, nested := op.(*Conjunction); nested {
			t.Error("nested Conjunction survived flattening")
		}
	}
	if !left.Equals(right) {
		t.Errorf("associated trees differ: %v vs %v", left, right)
	}
	if left.Hash() != right.Hash() {
		t.Errorf("associated trees hash differently: %d vs %d", left.Hash(), right.Hash())
	}
}

func TestOr_Flattening(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)
	c := NewPredicate(3, 0, false)

	left := Or(Or(a, b), c)
	right := Or(a, Or(b, c))

	node, ok := left.(*Disjunction)
	if !ok {
		t.Fatalf("Or(Or(a,b), c) is %T, want *Disjunction", left)
	}
	if len(node.Operands()) != 3 {
		t.Errorf("operand count = %d, want 3 (flattened, not nested)", len(node.Operands()))
	}
	if !left.Equals(right) {
		t.Errorf("associated trees differ: %v vs %v", left, right)
	}
}

func TestCombine_Commutativity(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)

	if !And(a, b).Equals(And(b, a)) {
		t.Error("And(a,b) != And(b,a)")
	}
	if And(a, b).Hash() != And(b, a).Hash() {
		t.Error("And(a,b) and And(b,a) hash differently")
	}
	if !Or(a, b).Equals(Or(b, a)) {
		t.Error("Or(a,b) != Or(b,a)")
	}
	if Or(a, b).Hash() != Or(b, a).Hash() {
		t.Error("Or(a,b) and Or(b,a) hash differently")
	}
}

func TestCombine_Deduplication(t *testing.T) {
	a := NewPredicate(1, 0, false)
	sameAsA := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)

	// Structural duplicate collapses even across distinct instances.
	node, ok := And(And(a, b), sameAsA).(*Conjunction)
	if !ok {
		t.Fatalf("expected *Conjunction")
	}
	if len(node.Operands()) != 2 {
		t.Errorf("operand count = %d, want 2 after dedup", len(node.Operands()))
	}
}

func TestAnd_PrecedenceReduction_KeepsMinimum(t *testing.T) {
	p3 := NewPrecedencePredicate(3)
	p5 := NewPrecedencePredicate(5)

	got := And(p3, p5)
	want := NewPrecedencePredicate(3)
	if !got.Equals(want) {
		t.Errorf("And(prec 3, prec 5) = %v, want %v", got, want)
	}

	// Mixed with a semantic predicate: exactly one precedence operand survives.
	sem := NewPredicate(1, 0, false)
	node, ok := And(And(p3, sem), p5).(*Conjunction)
	if !ok {
		t.Fatalf("expected *Conjunction")
	}
	precCount := 0
	for _, op := range node.Operands() {
		if p, isPrec := op.(*PrecedencePredicate); isPrec {
			precCount++
			if p.Threshold() != 3 {
				t.Errorf("surviving threshold = %d, want 3", p.Threshold())
			}
		}
	}
	if precCount != 1 {
		t.Errorf("precedence operand count = %d, want 1", precCount)
	}
}

func TestOr_PrecedenceReduction_KeepsMaximum(t *testing.T) {
	p3 := NewPrecedencePredicate(3)
	p5 := NewPrecedencePredicate(5)

	got := Or(p3, p5)
	want := NewPrecedencePredicate(5)
	if !got.Equals(want) {
		t.Errorf("Or(prec 3, prec 5) = %v, want %v", got, want)
	}

	sem := NewPredicate(1, 0, false)
	node, ok := Or(Or(p3, sem), p5).(*Disjunction)
	if !ok {
		t.Fatalf("expected *Disjunction")
	}
	precCount := 0
	for _, op := range node.Operands() {
		if p, isPrec := op.(*PrecedencePredicate); isPrec {
			precCount++
			if p.Threshold() != 5 {
				t.Errorf("surviving threshold = %d, want 5", p.Threshold())
			}
		}
	}
	if precCount != 1 {
		t.Errorf("precedence operand count = %d, want 1", precCount)
	}
}

func TestCombine_StableRendering(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)

	// Structurally equal nodes render identically regardless of build order.
	if And(a, b).String() != And(b, a).String() {
		t.Errorf("renderings differ: %q vs %q", And(a, b).String(), And(b, a).String())
	}
	if Or(a, b).String() != Or(b, a).String() {
		t.Errorf("renderings differ: %q vs %q", Or(a, b).String(), Or(b, a).String())
	}
}

func TestConjunction_RendersDisjunctionGrouped(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)
	c := NewPredicate(3, 0, false)

	// "&&" binds tighter than "||" in the expression syntax, so the
	// disjunction operand must be parenthesized to preserve grouping.
	s := And(Or(a, b), c).String()
	open := strings.Index(s, "(")
	or := strings.Index(s, "||")
	closing := strings.Index(s, ")")
	if open == -1 || or == -1 || closing == -1 || open > or || or > closing {
		t.Errorf("And(Or(a,b), c).String() = %q, want disjunction inside parentheses", s)
	}

	// Conjunction under disjunction needs no grouping.
	if s := Or(And(a, b), c).String(); strings.Contains(s, "(") {
		t.Errorf("Or(And(a,b), c).String() = %q, want no parentheses", s)
	}
}

func TestLeafPredicates(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, true)
	p := NewPrecedencePredicate(4)

	leaves := LeafPredicates(Or(And(a, p), b))
	if len(leaves) != 2 {
		t.Fatalf("leaf count = %d, want 2 (precedence leaves excluded)", len(leaves))
	}
	seen := map[string]bool{}
	for _, l := range leaves {
		seen[l.String()] = true
	}
	if !seen["{1:0}?"] || !seen["{2:0}?*"] {
		t.Errorf("leaves = %v, want {1:0}? and {2:0}?*", seen)
	}
}
