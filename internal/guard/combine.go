// internal/guard/combine.go
package guard

import "sort"

/*
 * Combinator factories and canonical operand-set construction.
 *
 * And/Or are the only sanctioned way to combine two conditions. They apply
 * the boolean identity and absorption laws, flatten one level of same-kind
 * nesting (deeper nesting cannot exist because every node was itself built
 * here), deduplicate operands by structural equality, and reduce multiple
 * precedence predicates to a single representative: minimum threshold for
 * And, maximum for Or. This mirrors precedence climbing in left-recursive
 * rule combination; the tie-break direction is load-bearing and must not
 * be "fixed" to the naive hardest-threshold reading.
 *
 * Sentinel convention at this layer: a nil Condition argument means "no
 * condition yet" and acts as the identity for both factories. The same nil
 * value returned from SimplifyPrecedence means "statically false"; the two
 * meanings never meet because factories are construction-time and
 * simplification is evaluation-time.
 *
 * Operands are stored sorted by (hash, rendering). The derived order makes
 * equality a pairwise scan, hashing order-independent, and rendering
 * deterministic across structurally equal instances.
 */

// And combines two conditions conjunctively. A nil or AlwaysTrue argument
// is absorbed (conjunction identity). The result is canonical: flattened,
// deduplicated, at most one precedence predicate (minimum threshold), and
// collapsed to a single operand when reduction leaves only one.
func And(a, b Condition) Condition {
	if a == nil || isAlwaysTrue(a) {
		return b
	}
	if b == nil || isAlwaysTrue(b) {
		return a
	}
	if a.Equals(b) {
		return a
	}

	set := newCondSet()
	set.addFlattened(a, kindAnd)
	set.addFlattened(b, kindAnd)

	operands := reducePrecedence(set.items, keepMin)
	if len(operands) == 1 {
		return operands[0]
	}
	return &Conjunction{operands: canonicalize(operands)}
}

// Or combines two conditions disjunctively. A nil argument is absorbed
// ("no condition yet"); an AlwaysTrue argument makes the whole disjunction
// AlwaysTrue. The result is canonical with at most one precedence
// predicate (maximum threshold).
func Or(a, b Condition) Condition {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if isAlwaysTrue(a) || isAlwaysTrue(b) {
		return AlwaysTrue
	}
	if a.Equals(b) {
		return a
	}

	set := newCondSet()
	set.addFlattened(a, kindOr)
	set.addFlattened(b, kindOr)

	operands := reducePrecedence(set.items, keepMax)
	if len(operands) == 1 {
		return operands[0]
	}
	return &Disjunction{operands: canonicalize(operands)}
}

type nodeKind int

const (
	kindAnd nodeKind = iota
	kindOr
)

// condSet is a small insertion-ordered set keyed by structural
// equality/hash. Operand counts are bounded by the grammar, so buckets
// stay tiny.
type condSet struct {
	buckets map[uint32][]Condition
	items   []Condition
}

func newCondSet() *condSet {
	return &condSet{buckets: make(map[uint32][]Condition)}
}

func (s *condSet) add(c Condition) {
	h := c.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equals(c) {
			return
		}
	}
	s.buckets[h] = append(s.buckets[h], c)
	s.items = append(s.items, c)
}

// addFlattened unpacks one level of same-kind nesting before inserting.
func (s *condSet) addFlattened(c Condition, kind nodeKind) {
	switch n := c.(type) {
	case *Conjunction:
		if kind == kindAnd {
			for _, op := range n.operands {
				s.add(op)
			}
			return
		}
	case *Disjunction:
		if kind == kindOr {
			for _, op := range n.operands {
				s.add(op)
			}
			return
		}
	}
	s.add(c)
}

type precedenceKeep int

const (
	keepMin precedenceKeep = iota
	keepMax
)

// reducePrecedence removes all precedence predicates from the operand list
// and reinserts the single representative, keeping the minimum threshold
// for conjunction and the maximum for disjunction.
func reducePrecedence(operands []Condition, keep precedenceKeep) []Condition {
	var reduced *PrecedencePredicate
	rest := operands[:0:0]

	for _, op := range operands {
		p, ok := op.(*PrecedencePredicate)
		if !ok {
			rest = append(rest, op)
			continue
		}
		if reduced == nil {
			reduced = p
			continue
		}
		if keep == keepMin && p.precedence < reduced.precedence {
			reduced = p
		}
		if keep == keepMax && p.precedence > reduced.precedence {
			reduced = p
		}
	}

	if reduced != nil {
		rest = append(rest, reduced)
	}
	return rest
}

// canonicalize sorts operands by (hash, rendering). Renderings alone are
// not unique across context-dependence, hence the two-level key.
func canonicalize(operands []Condition) []Condition {
	sort.Slice(operands, func(i, j int) bool {
		hi, hj := operands[i].Hash(), operands[j].Hash()
		if hi != hj {
			return hi < hj
		}
		return operands[i].String() < operands[j].String()
	})
	return operands
}

// LeafPredicates collects the semantic predicate leaves of a condition
// tree in canonical operand order. Ambiguity resolution uses the leaf
// list to map predicates back to the alternatives they guard.
func LeafPredicates(c Condition) []*Predicate {
	var out []*Predicate
	collectPredicates(c, &out)
	return out
}

func collectPredicates(c Condition, out *[]*Predicate) {
	switch n := c.(type) {
	case *Predicate:
		*out = append(*out, n)
	case *Conjunction:
		for _, op := range n.operands {
			collectPredicates(op, out)
		}
	case *Disjunction:
		for _, op := range n.operands {
			collectPredicates(op, out)
		}
	}
}
