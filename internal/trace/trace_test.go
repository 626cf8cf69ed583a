// internal/trace/trace_test.go
package trace

import (
	"testing"

	"github.com/parsekit/semguard/internal/guard"
	"github.com/parsekit/semguard/internal/stub"
	"github.com/parsekit/semguard/internal/types"
)

func newFixture(t *testing.T) guard.Recognizer {
	t.Helper()
	rec, err := stub.New(stub.Fixture{
		Predicates: []stub.PredicateEntry{
			{Rule: 1, Pred: 0, Result: true},
			{Rule: 2, Pred: 0, Result: false},
		},
		Precedence: stub.PrecedenceEntry{Current: 3},
	})
	if err != nil {
		t.Fatalf("stub.New() error = %v", err)
	}
	return rec
}

func TestRecognizer_RecordsLeafTests(t *testing.T) {
	rec := Wrap(newFixture(t), nil)

	cond := guard.And(guard.NewPredicate(1, 0, false), guard.NewPrecedencePredicate(5))
	if !cond.Evaluate(rec, nil) {
		t.Fatal("Evaluate() = false, want true")
	}

	steps := rec.Steps()
	if len(steps) != 2 {
		t.Fatalf("step count = %d, want 2", len(steps))
	}

	kinds := map[StepKind]Step{}
	for _, s := range steps {
		kinds[s.Kind] = s
	}
	sem, ok := kinds[StepSemantic]
	if !ok {
		t.Fatal("no semantic step recorded")
	}
	if sem.RuleIndex != 1 || sem.PredIndex != 0 || !sem.Outcome {
		t.Errorf("semantic step = %+v, want rule 1 pred 0 outcome true", sem)
	}
	prec, ok := kinds[StepPrecedence]
	if !ok {
		t.Fatal("no precedence step recorded")
	}
	if prec.Precedence != 5 || !prec.Outcome {
		t.Errorf("precedence step = %+v, want precedence 5 outcome true", prec)
	}
}

func TestRecognizer_ShortCircuitRecordsOnlyExecutedTests(t *testing.T) {
	rec := Wrap(newFixture(t), nil)

	cond := guard.And(guard.NewPredicate(1, 0, false), guard.NewPredicate(2, 0, false))
	if cond.Evaluate(rec, nil) {
		t.Fatal("Evaluate() = true, want false")
	}

	// Short-circuit order is unspecified; at most one test per operand.
	if n := len(rec.Steps()); n > 2 {
		t.Errorf("step count = %d, want at most 2", n)
	}
}

func TestRecognizer_TraceID(t *testing.T) {
	rec := Wrap(newFixture(t), nil)

	if _, err := types.ParseTraceID(string(rec.ID())); err != nil {
		t.Errorf("ID() is not a valid trace ID: %v", err)
	}
	if other := Wrap(newFixture(t), nil); other.ID() == rec.ID() {
		t.Error("two wraps produced the same trace ID")
	}
}

func TestRecognizer_StepsReturnsCopy(t *testing.T) {
	rec := Wrap(newFixture(t), nil)
	guard.NewPredicate(1, 0, false).Evaluate(rec, nil)

	steps := rec.Steps()
	steps[0].Outcome = !steps[0].Outcome

	if rec.Steps()[0].Outcome == steps[0].Outcome {
		t.Error("mutating the returned slice affected recorded steps")
	}
}
