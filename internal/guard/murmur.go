// internal/guard/murmur.go
package guard

/*
 * MurmurHash3 (32-bit) mixing primitives for structural condition hashing.
 *
 * Conditions are used as keys in parsing-state caches, so structurally
 * equal trees must hash identically. Conjunction and Disjunction seed
 * with different constants (37 vs 41) so {a&&b} and {a||b} over the same
 * operands do not collide trivially. Operands are mixed in canonical
 * order, which makes the hash order-independent for equal operand sets.
 */

const (
	murmurC1 = 0xcc9e2d51
	murmurC2 = 0x1b873593
)

// murmurInit starts a hash round with the given seed.
func murmurInit(seed uint32) uint32 {
	return seed
}

// murmurUpdate mixes one 32-bit value into the running hash.
func murmurUpdate(h, value uint32) uint32 {
	k := value * murmurC1
	k = (k << 15) | (k >> 17)
	k *= murmurC2

	h ^= k
	h = (h << 13) | (h >> 19)
	return h*5 + 0xe6546b64
}

// murmurFinish finalizes the hash over count mixed values.
func murmurFinish(h uint32, count int) uint32 {
	h ^= uint32(count) * 4
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
