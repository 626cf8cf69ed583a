// Package types provides domain models shared across semguard components.
//
// Zero-dependency design: types.go and errors.go use only the standard
// library so the guard algebra can be embedded without pulling in tooling
// dependencies. ID utilities in ids.go import uuid but are isolated for
// selective inclusion.
package types

// Resource limits enforced by the expression parser to keep guard trees
// bounded by the grammar rather than by user input.
const (
	// MaxExpressionLength caps the textual length of a guard expression.
	// 4KB accommodates the largest trees produced by realistic grammars;
	// anything beyond indicates generated or malicious input.
	MaxExpressionLength = 4 * 1024

	// MaxExpressionDepth prevents stack overflow during recursive descent.
	// Canonical trees are at most two levels deep (Or of And of leaves);
	// 32 leaves generous headroom for parenthesized input before flattening.
	MaxExpressionDepth = 32

	// MaxRuleIndex bounds predicate rule indices. Grammars with more than
	// 64k rules are rejected upstream; the same ceiling applies here.
	MaxRuleIndex = 1 << 16

	// MaxPredIndex bounds predicate indices within a rule. Same ceiling as
	// rule indices: no rule declares more predicates than the grammar has rules.
	MaxPredIndex = 1 << 16

	// MaxPrecedence bounds precedence thresholds. Mirrors the deepest
	// operator table any practical grammar declares.
	MaxPrecedence = 1 << 16
)
