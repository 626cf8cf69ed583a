package types

import "errors"

// Sentinel errors for semguard operations.
var (
	// ErrExpressionTooLong indicates a guard expression exceeds MaxExpressionLength.
	ErrExpressionTooLong = errors.New("expression exceeds maximum length")

	// ErrExpressionTooDeep indicates nesting exceeds MaxExpressionDepth.
	ErrExpressionTooDeep = errors.New("expression exceeds maximum depth")

	// ErrRuleIndexOutOfRange indicates a predicate rule index exceeds MaxRuleIndex.
	ErrRuleIndexOutOfRange = errors.New("rule index out of range")

	// ErrPredIndexOutOfRange indicates a predicate index exceeds MaxPredIndex.
	ErrPredIndexOutOfRange = errors.New("predicate index out of range")

	// ErrPrecedenceOutOfRange indicates a precedence threshold exceeds MaxPrecedence.
	ErrPrecedenceOutOfRange = errors.New("precedence out of range")

	// ErrSyntax indicates a malformed guard expression.
	ErrSyntax = errors.New("malformed guard expression")

	// ErrUnknownPredicate indicates a fixture has no entry for a (rule, pred) pair.
	ErrUnknownPredicate = errors.New("fixture has no entry for predicate")

	// ErrFixtureInvalid indicates a fixture file failed validation.
	ErrFixtureInvalid = errors.New("invalid fixture")
)
