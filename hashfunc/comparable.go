package hashfunc

import "hash/maphash"

// Comparable - General purpose hash for any comparable key type, built on a seeded hash/maphash.
// Hash values differ between instances (and between processes), so the same instance must be used for the
// lifetime of a table.
type Comparable[K comparable] struct {
	seed maphash.Seed
}

// NewComparable - Returns a Comparable with a fresh random seed
func NewComparable[K comparable]() Comparable[K] {
	return Comparable[K]{seed: maphash.MakeSeed()}
}

// Hash - Returns the seeded hash of the key
func (C Comparable[K]) Hash(key K) uint64 {
	return maphash.Comparable(C.seed, key)
}

// Equal - Compares keys with ==
func (C Comparable[K]) Equal(key1, key2 K) bool {
	return key1 == key2
}
