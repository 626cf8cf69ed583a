// internal/core/db/store.go
package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/parsekit/semguard/internal/trace"
	"github.com/parsekit/semguard/internal/types"
)

/*
 * Trace persistence.
 *
 * One eval_traces row per evaluation (trace ID, rendered expression,
 * final outcome) and one eval_steps row per leaf test, keyed by
 * (trace_id, seq) so step order survives storage. The rendered expression
 * is a diagnostic label only: the canonical tree is rebuilt from source
 * when needed, never deserialized from the store.
 */

// StoredTrace is one persisted evaluation.
type StoredTrace struct {
	TraceID    string `db:"trace_id"`
	Expression string `db:"expression"`
	Outcome    bool   `db:"outcome"`
	CreatedAt  string `db:"created_at"`
}

// StoredStep is one persisted leaf test.
type StoredStep struct {
	TraceID    string `db:"trace_id"`
	Seq        int    `db:"seq"`
	Kind       string `db:"kind"`
	RuleIndex  int    `db:"rule_index"`
	PredIndex  int    `db:"pred_index"`
	Precedence int    `db:"precedence"`
	Outcome    bool   `db:"outcome"`
	ElapsedUs  int64  `db:"elapsed_us"`
}

// Store persists evaluation traces through named queries.
type Store struct {
	queries *Queries
}

// NewStore loads the named queries and returns a trace store.
// The database must already be migrated (MigrateUp).
func NewStore(db *sqlx.DB) (*Store, error) {
	queries, err := LoadQueries(db)
	if err != nil {
		return nil, fmt.Errorf("failed to load trace queries: %w", err)
	}
	return &Store{queries: queries}, nil
}

// SaveTrace persists one evaluation and its recorded steps.
func (s *Store) SaveTrace(id types.TraceID, expression string, outcome bool, steps []trace.Step) error {
	createdAt := time.Now().UTC().Format(time.RFC3339)

	if _, err := s.queries.Exec("insert-trace", string(id), expression, outcome, createdAt); err != nil {
		return fmt.Errorf("failed to insert trace %s: %w", id, err)
	}

	for seq, step := range steps {
		_, err := s.queries.Exec("insert-step",
			string(id), seq, string(step.Kind),
			step.RuleIndex, step.PredIndex, step.Precedence,
			step.Outcome, step.Elapsed.Microseconds(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert step %d of trace %s: %w", seq, id, err)
		}
	}

	return nil
}

// GetTrace loads one evaluation and its steps in execution order.
func (s *Store) GetTrace(id types.TraceID) (StoredTrace, []StoredStep, error) {
	var stored StoredTrace
	if err := s.queries.Get("get-trace", &stored, string(id)); err != nil {
		return StoredTrace{}, nil, fmt.Errorf("failed to load trace %s: %w", id, err)
	}

	var steps []StoredStep
	if err := s.queries.Select("list-steps", &steps, string(id)); err != nil {
		return StoredTrace{}, nil, fmt.Errorf("failed to load steps of trace %s: %w", id, err)
	}

	return stored, steps, nil
}

// ListTraces returns the most recent traces, newest first.
func (s *Store) ListTraces(limit int) ([]StoredTrace, error) {
	var traces []StoredTrace
	if err := s.queries.Select("list-traces", &traces, limit); err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	return traces, nil
}
