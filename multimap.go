package tablemap

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/storage/separatechaining"
)

// HashMultiMap - Map where a key may be stored any number of times, backed by a separate chaining table.
// All pairs sharing a key are kept next to each other, so EqualRange can hand them out as one range.
type HashMultiMap[K, V any] struct {
	table *separatechaining.Table[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]]
}

// NewHashMultiMap - Returns a pointer to a new empty HashMultiMap.
//   - keyFuncs is the hash function and key equality, see package hashfunc for ready-made ones
//   - opts are any number of Option
//
// It returns:
//   - multiMap is a pointer to the created instance
//   - err is of type crt.InvalidConfiguration or crt.AllocationFailed
func NewHashMultiMap[K, V any](keyFuncs hashfunc.KeyFuncs[K], opts ...Option) (multiMap *HashMultiMap[K, V], err error) {
	table, err := separatechaining.NewTable[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]](tableConf(keyFuncs, opts))
	if err != nil {
		return
	}

	multiMap = &HashMultiMap[K, V]{table: table}

	return
}

// Insert - Adds key with value, also when key already exists
//
// It returns:
//   - it is an iterator to the new pair
//   - err is of type crt.AllocationFailed, the map is then unchanged
func (H *HashMultiMap[K, V]) Insert(key K, value V) (it HashMapIterator[K, V], err error) {
	return H.table.InsertEqual(accessor.MakePair(key, value))
}

// Count - Returns the number of pairs with key
func (H *HashMultiMap[K, V]) Count(key K) int {
	return H.table.Count(key)
}

// EqualRange - Returns the range [first, last) holding every pair with key
func (H *HashMultiMap[K, V]) EqualRange(key K) (first, last HashMapIterator[K, V]) {
	return H.table.EqualRange(key)
}

// Contains - Returns true if at least one pair with key exists
func (H *HashMultiMap[K, V]) Contains(key K) bool {
	return !H.table.Find(key).IsEnd()
}

// Find - Returns an iterator to the first pair with key, or End if there is none
func (H *HashMultiMap[K, V]) Find(key K) HashMapIterator[K, V] {
	return H.table.Find(key)
}

// Erase - Removes the pair it refers to and returns an iterator to the pair following it
func (H *HashMultiMap[K, V]) Erase(it HashMapIterator[K, V]) (next HashMapIterator[K, V]) {
	next = it
	next.Next()
	H.table.Erase(it)

	return
}

// EraseKey - Removes every pair with key, returns the number of pairs removed
func (H *HashMultiMap[K, V]) EraseKey(key K) int {
	return H.table.EraseKey(key)
}

// Clear - Removes every pair, the capacity is kept
func (H *HashMultiMap[K, V]) Clear() {
	H.table.Clear()
}

// Begin - Returns an iterator to the first pair, or End if the map is empty
func (H *HashMultiMap[K, V]) Begin() HashMapIterator[K, V] {
	return H.table.Begin()
}

// End - Returns the pass-the-end iterator
func (H *HashMultiMap[K, V]) End() HashMapIterator[K, V] {
	return H.table.End()
}

// Size - Returns the number of pairs
func (H *HashMultiMap[K, V]) Size() int {
	return H.table.Size()
}

// Capacity - Returns the number of buckets
func (H *HashMultiMap[K, V]) Capacity() int {
	return H.table.Capacity()
}

// MaxLoad - Returns the load factor in integer percent that triggers growth
func (H *HashMultiMap[K, V]) MaxLoad() uint8 {
	return H.table.MaxLoad()
}

// Empty - Returns true if the map holds no pairs
func (H *HashMultiMap[K, V]) Empty() bool {
	return H.table.Empty()
}

// Move - Returns a new HashMultiMap owning every pair of H, H is left empty with capacity 0
func (H *HashMultiMap[K, V]) Move() *HashMultiMap[K, V] {
	return &HashMultiMap[K, V]{table: H.table.Move()}
}

// Release - Returns every pair and the bucket array to the allocator
func (H *HashMultiMap[K, V]) Release() {
	H.table.Release()
}

// Stat - Returns usage statistics, includeDistribution adds the number of pairs per bucket
func (H *HashMultiMap[K, V]) Stat(includeDistribution bool) Stat {
	return H.table.Stat(includeDistribution)
}

// GetStorageParameters - Returns the current shape of the multi map
func (H *HashMultiMap[K, V]) GetStorageParameters() StorageParameters {
	return H.table.GetStorageParameters()
}
