// internal/trace/trace.go

// Package trace decorates a guard.Recognizer to record every leaf test
// performed during evaluation. The algebra itself stays logging-free; all
// diagnostics live in this wrapper, so tracing can be added or removed
// without touching guard semantics or its immutability guarantees.
package trace

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/parsekit/semguard/internal/guard"
	"github.com/parsekit/semguard/internal/types"
)

// StepKind distinguishes the two primitive recognizer tests.
type StepKind string

const (
	StepSemantic   StepKind = "semantic"
	StepPrecedence StepKind = "precedence"
)

// Step records one leaf test: which primitive ran, with what operands,
// what it returned, and how long it took.
type Step struct {
	Kind       StepKind
	RuleIndex  int
	PredIndex  int
	Precedence int
	Outcome    bool
	Elapsed    time.Duration
}

// Recognizer wraps an inner guard.Recognizer and records a Step per leaf
// test under a UUIDv7 trace ID. Guard evaluation is synchronous, but the
// recorder is used from command goroutines as well, so step appends are
// mutex-guarded.
type Recognizer struct {
	inner  guard.Recognizer
	id     types.TraceID
	logger *zap.Logger

	mu    sync.Mutex
	steps []Step
}

// Wrap decorates inner with step recording. A nil logger disables log
// output but still records steps.
func Wrap(inner guard.Recognizer, logger *zap.Logger) *Recognizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recognizer{
		inner:  inner,
		id:     types.NewTraceID(),
		logger: logger,
	}
}

// ID returns the trace identifier assigned at wrap time.
func (r *Recognizer) ID() types.TraceID { return r.id }

// Steps returns a copy of the recorded steps in execution order.
func (r *Recognizer) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// SemanticPredicate delegates to the inner recognizer and records the
// outcome. Panics from the inner recognizer propagate unrecorded: a test
// that did not complete has no outcome to log.
func (r *Recognizer) SemanticPredicate(ctx guard.ExecutionContext, ruleIndex, predIndex int) bool {
	start := time.Now()
	outcome := r.inner.SemanticPredicate(ctx, ruleIndex, predIndex)
	elapsed := time.Since(start)

	r.record(Step{
		Kind:      StepSemantic,
		RuleIndex: ruleIndex,
		PredIndex: predIndex,
		Outcome:   outcome,
		Elapsed:   elapsed,
	})
	r.logger.Debug("semantic predicate tested",
		zap.String("trace_id", string(r.id)),
		zap.Int("rule", ruleIndex),
		zap.Int("pred", predIndex),
		zap.Bool("outcome", outcome))
	return outcome
}

// Precedence delegates to the inner recognizer and records the outcome.
func (r *Recognizer) Precedence(ctx guard.ExecutionContext, precedence int) bool {
	start := time.Now()
	outcome := r.inner.Precedence(ctx, precedence)
	elapsed := time.Since(start)

	r.record(Step{
		Kind:       StepPrecedence,
		Precedence: precedence,
		Outcome:    outcome,
		Elapsed:    elapsed,
	})
	r.logger.Debug("precedence tested",
		zap.String("trace_id", string(r.id)),
		zap.Int("precedence", precedence),
		zap.Bool("outcome", outcome))
	return outcome
}

func (r *Recognizer) record(s Step) {
	r.mu.Lock()
	r.steps = append(r.steps, s)
	r.mu.Unlock()
}
