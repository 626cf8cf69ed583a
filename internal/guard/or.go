// internal/guard/or.go
package guard

import "strings"

/*
 * Disjunction: a set of operand conditions, at least one of which must
 * hold. Symmetric to Conjunction with all roles inverted: the Or factory
 * keeps the maximum-threshold precedence predicate, evaluation
 * short-circuits on the first true operand, and precedence simplification
 * resolves to AlwaysTrue as soon as any operand does.
 */

// Disjunction is a guard that holds when at least one operand holds.
// Construct only through Or.
type Disjunction struct {
	operands []Condition
}

// Operands returns a copy of the operand set in canonical order.
func (d *Disjunction) Operands() []Condition {
	out := make([]Condition, len(d.operands))
	copy(out, d.operands)
	return out
}

// Evaluate returns true at the first true operand.
func (d *Disjunction) Evaluate(rec Recognizer, ctx ExecutionContext) bool {
	for _, op := range d.operands {
		if op.Evaluate(rec, ctx) {
			return true
		}
	}
	return false
}

// SimplifyPrecedence recursively simplifies each operand. Any operand that
// resolves to AlwaysTrue makes the whole disjunction true. Operands
// resolving to false (nil) are dropped; if all are dropped the disjunction
// is statically false. When nothing changed the receiver is returned
// as-is. Survivors are folded back through the Or factory.
func (d *Disjunction) SimplifyPrecedence(rec Recognizer, ctx ExecutionContext) Condition {
	differs := false
	var kept []Condition

	for _, op := range d.operands {
		simplified := op.SimplifyPrecedence(rec, ctx)
		differs = differs || simplified != op
		if isAlwaysTrue(simplified) {
			return AlwaysTrue
		}
		if simplified != nil {
			kept = append(kept, simplified)
		}
	}

	if !differs {
		return d
	}
	if len(kept) == 0 {
		return nil
	}

	result := kept[0]
	for _, op := range kept[1:] {
		result = Or(result, op)
	}
	return result
}

func (d *Disjunction) Hash() uint32 {
	h := murmurInit(41)
	for _, op := range d.operands {
		h = murmurUpdate(h, op.Hash())
	}
	return murmurFinish(h, len(d.operands))
}

// Equals compares operand sets pairwise; canonical ordering makes the
// scan order-independent.
func (d *Disjunction) Equals(other Condition) bool {
	o, ok := other.(*Disjunction)
	if !ok {
		return false
	}
	if len(d.operands) != len(o.operands) {
		return false
	}
	for i, op := range d.operands {
		if !op.Equals(o.operands[i]) {
			return false
		}
	}
	return true
}

func (d *Disjunction) String() string {
	parts := make([]string, len(d.operands))
	for i, op := range d.operands {
		parts[i] = op.String()
	}
	return strings.Join(parts, "||")
}

func (d *Disjunction) isCondition() {}
