// internal/guard/evaluate_test.go
package guard

import "testing"

func TestEvaluate_EndToEnd(t *testing.T) {
	rec := &stubRecognizer{truth: map[[2]int]bool{
		{1, 0}: true,
		{2, 0}: false,
	}}

	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)

	if got := And(a, b).Evaluate(rec, nil); got {
		t.Error("And(true, false).Evaluate() = true, want false")
	}
	if got := Or(a, b).Evaluate(rec, nil); !got {
		t.Error("Or(true, false).Evaluate() = false, want true")
	}
	if got := And(a, a).Evaluate(rec, nil); !got {
		t.Error("And(true, true).Evaluate() = false, want true")
	}
	if got := Or(b, b).Evaluate(rec, nil); got {
		t.Error("Or(false, false).Evaluate() = true, want false")
	}
}

func TestEvaluate_AndShortCircuit(t *testing.T) {
	// Operand order is unspecified; the only guarantees are the result
	// and that no more tests run than there are operands.
	rec := &stubRecognizer{truth: map[[2]int]bool{
		{1, 0}: false,
		{2, 0}: true,
	}}

	cond := And(NewPredicate(1, 0, false), NewPredicate(2, 0, false))
	if cond.Evaluate(rec, nil) {
		t.Error("Evaluate() = true, want false")
	}
	if rec.semCalls > 2 {
		t.Errorf("semantic tests = %d, want at most 2", rec.semCalls)
	}
}

func TestEvaluate_OrShortCircuit(t *testing.T) {
	rec := &stubRecognizer{truth: map[[2]int]bool{
		{1, 0}: true,
		{2, 0}: true,
	}}

	cond := Or(NewPredicate(1, 0, false), NewPredicate(2, 0, false))
	if !cond.Evaluate(rec, nil) {
		t.Error("Evaluate() = false, want true")
	}
	if rec.semCalls > 2 {
		t.Errorf("semantic tests = %d, want at most 2", rec.semCalls)
	}
}

func TestEvaluate_PrecedenceLeaf(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		threshold int
		want      bool
	}{
		{"threshold above current", 2, 5, true},
		{"threshold at current", 3, 3, true},
		{"threshold below current", 5, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &stubRecognizer{current: tt.current}
			got := NewPrecedencePredicate(tt.threshold).Evaluate(rec, nil)
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_MixedTree(t *testing.T) {
	rec := &stubRecognizer{
		truth:   map[[2]int]bool{{1, 0}: true, {2, 0}: false},
		current: 4,
	}

	// ({1:0}? && {5>=prec}?) || {2:0}?
	cond := Or(And(NewPredicate(1, 0, false), NewPrecedencePredicate(5)), NewPredicate(2, 0, false))
	if !cond.Evaluate(rec, nil) {
		t.Error("Evaluate() = false, want true")
	}

	// ({1:0}? && {2>=prec}?) || {2:0}?  -- precedence branch now fails
	cond = Or(And(NewPredicate(1, 0, false), NewPrecedencePredicate(2)), NewPredicate(2, 0, false))
	if cond.Evaluate(rec, nil) {
		t.Error("Evaluate() = true, want false")
	}
}
