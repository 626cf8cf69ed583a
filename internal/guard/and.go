// internal/guard/and.go
package guard

import "strings"

/*
 * Conjunction: a set of operand conditions, all of which must hold.
 *
 * Canonical-form invariants (established by the And factory, never
 * rechecked here):
 *   - no operand is itself a Conjunction
 *   - at most one operand is a PrecedencePredicate (minimum threshold)
 *   - no duplicate operands by structural equality
 *   - at least two operands; single-operand nodes never escape the factory
 *
 * Evaluation is short-circuiting but unordered: callers must not rely on
 * a later operand being invoked once an earlier one is false.
 */

// Conjunction is a guard that holds when every operand holds.
// Construct only through And.
type Conjunction struct {
	operands []Condition
}

// Operands returns a copy of the operand set in canonical order.
func (c *Conjunction) Operands() []Condition {
	out := make([]Condition, len(c.operands))
	copy(out, c.operands)
	return out
}

// Evaluate returns false at the first false operand.
func (c *Conjunction) Evaluate(rec Recognizer, ctx ExecutionContext) bool {
	for _, op := range c.operands {
		if !op.Evaluate(rec, ctx) {
			return false
		}
	}
	return true
}

// SimplifyPrecedence recursively simplifies each operand. Any operand that
// resolves to false makes the whole conjunction false (nil). Operands
// resolving to AlwaysTrue are dropped. When nothing changed the receiver
// is returned as-is so upstream caches keyed on instance identity stay
// valid. Survivors are folded back through the And factory to re-establish
// the canonical-form invariants.
func (c *Conjunction) SimplifyPrecedence(rec Recognizer, ctx ExecutionContext) Condition {
	differs := false
	var kept []Condition

	for _, op := range c.operands {
		simplified := op.SimplifyPrecedence(rec, ctx)
		differs = differs || simplified != op
		if simplified == nil {
			return nil
		}
		if !isAlwaysTrue(simplified) {
			kept = append(kept, simplified)
		}
	}

	if !differs {
		return c
	}
	if len(kept) == 0 {
		return AlwaysTrue
	}

	result := kept[0]
	for _, op := range kept[1:] {
		result = And(result, op)
	}
	return result
}

func (c *Conjunction) Hash() uint32 {
	h := murmurInit(37)
	for _, op := range c.operands {
		h = murmurUpdate(h, op.Hash())
	}
	return murmurFinish(h, len(c.operands))
}

// Equals compares operand sets pairwise; canonical ordering makes the
// scan order-independent.
func (c *Conjunction) Equals(other Condition) bool {
	o, ok := other.(*Conjunction)
	if !ok {
		return false
	}
	if len(c.operands) != len(o.operands) {
		return false
	}
	for i, op := range c.operands {
		if !op.Equals(o.operands[i]) {
			return false
		}
	}
	return true
}

// String parenthesizes Disjunction operands: "&&" binds tighter than "||"
// in the expression syntax, so a bare "a||b&&c" would re-read with the
// wrong grouping. Canonical form admits no other composite operand kind.
func (c *Conjunction) String() string {
	parts := make([]string, len(c.operands))
	for i, op := range c.operands {
		if _, grouped := op.(*Disjunction); grouped {
			parts[i] = "(" + op.String() + ")"
			continue
		}
		parts[i] = op.String()
	}
	return strings.Join(parts, "&&")
}

func (c *Conjunction) isCondition() {}
