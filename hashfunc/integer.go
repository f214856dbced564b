package hashfunc

import "golang.org/x/exp/constraints"

// Integer - Identity hash for integer keys, a key lands in bucket key mod capacity.
// Negative keys are hashed through their two's complement representation.
type Integer[K constraints.Integer] struct{}

// Hash - Returns the key itself
func (Integer[K]) Hash(key K) uint64 {
	return uint64(key)
}

// Equal - Compares keys with ==
func (Integer[K]) Equal(key1, key2 K) bool {
	return key1 == key2
}
