// internal/guard/simplify_test.go
package guard

import "testing"

func TestSimplifyPrecedence_Leaves(t *testing.T) {
	t.Run("semantic predicate is untouched", func(t *testing.T) {
		rec := &stubRecognizer{current: 10}
		p := NewPredicate(1, 0, false)
		if got := p.SimplifyPrecedence(rec, nil); got != p {
			t.Errorf("SimplifyPrecedence() = %v, want the receiver", got)
		}
		if rec.precCalls != 0 {
			t.Errorf("precedence tests = %d, want 0", rec.precCalls)
		}
	})

	t.Run("permitted precedence resolves to AlwaysTrue", func(t *testing.T) {
		rec := &stubRecognizer{current: 2}
		got := NewPrecedencePredicate(5).SimplifyPrecedence(rec, nil)
		if got != AlwaysTrue {
			t.Errorf("SimplifyPrecedence() = %v, want AlwaysTrue", got)
		}
	})

	t.Run("rejected precedence resolves to false sentinel", func(t *testing.T) {
		rec := &stubRecognizer{current: 5}
		got := NewPrecedencePredicate(2).SimplifyPrecedence(rec, nil)
		if got != nil {
			t.Errorf("SimplifyPrecedence() = %v, want nil", got)
		}
	})
}

func TestSimplifyPrecedence_Conjunction(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)

	t.Run("unchanged node returns identical instance", func(t *testing.T) {
		rec := &stubRecognizer{}
		cond := And(a, b)
		if got := cond.SimplifyPrecedence(rec, nil); got != cond {
			t.Errorf("SimplifyPrecedence() rebuilt an unchanged node")
		}
	})

	t.Run("true precedence operand is dropped", func(t *testing.T) {
		rec := &stubRecognizer{current: 2}
		cond := And(And(a, b), NewPrecedencePredicate(5))
		got := cond.SimplifyPrecedence(rec, nil)
		if !got.Equals(And(a, b)) {
			t.Errorf("SimplifyPrecedence() = %v, want %v", got, And(a, b))
		}
	})

	t.Run("false precedence operand makes the node false", func(t *testing.T) {
		rec := &stubRecognizer{current: 9}
		cond := And(And(a, b), NewPrecedencePredicate(5))
		if got := cond.SimplifyPrecedence(rec, nil); got != nil {
			t.Errorf("SimplifyPrecedence() = %v, want nil", got)
		}
	})

	t.Run("sole remaining operand escapes the node", func(t *testing.T) {
		rec := &stubRecognizer{current: 2}
		cond := And(a, NewPrecedencePredicate(5))
		got := cond.SimplifyPrecedence(rec, nil)
		if !a.Equals(got) {
			t.Errorf("SimplifyPrecedence() = %v, want %v", got, a)
		}
	})

	t.Run("all operands true resolves to AlwaysTrue", func(t *testing.T) {
		// Disjunction operands that each contain a permitted precedence
		// test all collapse to AlwaysTrue, emptying the conjunction.
		rec := &stubRecognizer{current: 1}
		cond := And(
			Or(a, NewPrecedencePredicate(5)),
			Or(b, NewPrecedencePredicate(6)),
		)
		if got := cond.SimplifyPrecedence(rec, nil); got != AlwaysTrue {
			t.Errorf("SimplifyPrecedence() = %v, want AlwaysTrue", got)
		}
	})
}

func TestSimplifyPrecedence_Disjunction(t *testing.T) {
	a := NewPredicate(1, 0, false)
	b := NewPredicate(2, 0, false)

	t.Run("unchanged node returns identical instance", func(t *testing.T) {
		rec := &stubRecognizer{}
		cond := Or(a, b)
		if got := cond.SimplifyPrecedence(rec, nil); got != cond {
			t.Errorf("SimplifyPrecedence() rebuilt an unchanged node")
		}
	})

	t.Run("true precedence operand makes the node true", func(t *testing.T) {
		rec := &stubRecognizer{current: 2}
		cond := Or(Or(a, b), NewPrecedencePredicate(5))
		if got := cond.SimplifyPrecedence(rec, nil); got != AlwaysTrue {
			t.Errorf("SimplifyPrecedence() = %v, want AlwaysTrue", got)
		}
	})

	t.Run("false precedence operand is dropped", func(t *testing.T) {
		rec := &stubRecognizer{current: 9}
		cond := Or(Or(a, b), NewPrecedencePredicate(5))
		got := cond.SimplifyPrecedence(rec, nil)
		if !got.Equals(Or(a, b)) {
			t.Errorf("SimplifyPrecedence() = %v, want %v", got, Or(a, b))
		}
	})

	t.Run("sole remaining operand escapes the node", func(t *testing.T) {
		rec := &stubRecognizer{current: 9}
		cond := Or(a, NewPrecedencePredicate(5))
		got := cond.SimplifyPrecedence(rec, nil)
		if !a.Equals(got) {
			t.Errorf("SimplifyPrecedence() = %v, want %v", got, a)
		}
	})

	t.Run("all operands false resolves to false sentinel", func(t *testing.T) {
		rec := &stubRecognizer{current: 9}
		cond := Or(a, NewPrecedencePredicate(5))
		// Precedence drops; the semantic predicate survives. Only a
		// disjunction built purely from dropped operands goes false:
		got := NewPrecedencePredicate(5).SimplifyPrecedence(rec, nil)
		if got != nil {
			t.Errorf("SimplifyPrecedence() = %v, want nil", got)
		}
		if res := cond.SimplifyPrecedence(rec, nil); res == nil {
			t.Error("node with a surviving semantic operand must not go false")
		}
	})
}

func TestSimplifyPrecedence_Idempotence(t *testing.T) {
	rec := &stubRecognizer{current: 2}
	cond := Or(
		And(NewPredicate(1, 0, false), NewPrecedencePredicate(5)),
		NewPredicate(2, 0, false),
	)

	once := cond.SimplifyPrecedence(rec, nil)
	if once == nil {
		t.Fatal("first pass resolved to false unexpectedly")
	}
	twice := once.SimplifyPrecedence(rec, nil)
	if twice != once {
		t.Error("second pass rebuilt an already-simplified node")
	}
}
