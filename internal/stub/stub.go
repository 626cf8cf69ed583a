// internal/stub/stub.go

// Package stub provides a fixture-driven Recognizer for offline guard
// evaluation. A fixture declares the truth value of each semantic
// predicate and the current ambient precedence, letting the CLI and
// acceptance tests resolve guards without a live parse.
package stub

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/parsekit/semguard/internal/guard"
	"github.com/parsekit/semguard/internal/types"
)

// Fixture is the YAML document describing recognizer behavior.
type Fixture struct {
	Predicates []PredicateEntry `yaml:"predicates"`
	Precedence PrecedenceEntry  `yaml:"precedence"`

	// Strict makes lookups of undeclared predicates panic instead of
	// defaulting to false. Guard evaluation has no error channel, so a
	// panic is the only way a fixture gap can surface; the CLI recovers
	// it at the command boundary.
	Strict bool `yaml:"strict"`
}

// PredicateEntry declares the outcome of one semantic predicate test.
type PredicateEntry struct {
	Rule   int  `yaml:"rule"`
	Pred   int  `yaml:"pred"`
	Result bool `yaml:"result"`
}

// PrecedenceEntry declares the ambient precedence of the simulated parse.
type PrecedenceEntry struct {
	Current int `yaml:"current"`
}

// Recognizer answers guard leaf tests from a fixture. Implements
// guard.Recognizer. Read-only after construction; safe for concurrent use.
type Recognizer struct {
	truth   map[[2]int]bool
	current int
	strict  bool
}

// FromYAML parses and validates a fixture document.
// Rejects duplicate (rule, pred) declarations and out-of-range indices.
func FromYAML(data []byte) (*Recognizer, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFixtureInvalid, err)
	}
	return New(f)
}

// New builds a Recognizer from an in-memory fixture.
func New(f Fixture) (*Recognizer, error) {
	truth := make(map[[2]int]bool, len(f.Predicates))
	for _, e := range f.Predicates {
		if e.Rule > types.MaxRuleIndex {
			return nil, fmt.Errorf("%w: rule %d", types.ErrRuleIndexOutOfRange, e.Rule)
		}
		key := [2]int{e.Rule, e.Pred}
		if _, dup := truth[key]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for {%d:%d}", types.ErrFixtureInvalid, e.Rule, e.Pred)
		}
		truth[key] = e.Result
	}
	return &Recognizer{truth: truth, current: f.Precedence.Current, strict: f.Strict}, nil
}

// SemanticPredicate answers from the truth table. The AlwaysTrue sentinel
// triple (-1, -1) is unconditionally true per the recognizer contract.
func (r *Recognizer) SemanticPredicate(ctx guard.ExecutionContext, ruleIndex, predIndex int) bool {
	if ruleIndex == -1 && predIndex == -1 {
		return true
	}
	result, declared := r.truth[[2]int{ruleIndex, predIndex}]
	if !declared && r.strict {
		panic(fmt.Errorf("%w: {%d:%d}", types.ErrUnknownPredicate, ruleIndex, predIndex))
	}
	return result
}

// Precedence follows the climbing convention: continuing is permitted
// when the guard threshold is at least the current precedence.
func (r *Recognizer) Precedence(ctx guard.ExecutionContext, precedence int) bool {
	return precedence >= r.current
}
