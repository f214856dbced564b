package tablemap

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/storage/separatechaining"
)

// HashSetIterator - Iterator over the keys of a HashSet
type HashSetIterator[K any] = separatechaining.Iterator[K, K, K, accessor.SetAccessor[K]]

// HashSet - Set of unique keys backed by a separate chaining table
type HashSet[K any] struct {
	table *separatechaining.Table[K, K, K, accessor.SetAccessor[K]]
}

// NewHashSet - Returns a pointer to a new empty HashSet.
//   - keyFuncs is the hash function and key equality, see package hashfunc for ready-made ones
//   - opts are any number of Option
//
// It returns:
//   - hashSet is a pointer to the created instance
//   - err is of type crt.InvalidConfiguration or crt.AllocationFailed
func NewHashSet[K any](keyFuncs hashfunc.KeyFuncs[K], opts ...Option) (hashSet *HashSet[K], err error) {
	table, err := separatechaining.NewTable[K, K, K, accessor.SetAccessor[K]](tableConf(keyFuncs, opts))
	if err != nil {
		return
	}

	hashSet = &HashSet[K]{table: table}

	return
}

// Insert - Adds key unless it already exists
//
// It returns:
//   - it is an iterator to the new or the existing key
//   - inserted is true if the key was added
//   - err is of type crt.AllocationFailed, the set is then unchanged
func (H *HashSet[K]) Insert(key K) (it HashSetIterator[K], inserted bool, err error) {
	return H.table.InsertUnique(key)
}

// Contains - Returns true if key exists
func (H *HashSet[K]) Contains(key K) bool {
	return !H.table.Find(key).IsEnd()
}

// Find - Returns an iterator to key, or End if it does not exist
func (H *HashSet[K]) Find(key K) HashSetIterator[K] {
	return H.table.Find(key)
}

// Erase - Removes the key it refers to and returns an iterator to the key following it
func (H *HashSet[K]) Erase(it HashSetIterator[K]) (next HashSetIterator[K]) {
	next = it
	next.Next()
	H.table.Erase(it)

	return
}

// EraseKey - Removes key, returns the number of keys removed (0 or 1)
func (H *HashSet[K]) EraseKey(key K) int {
	return H.table.EraseKey(key)
}

// Clear - Removes every key, the capacity is kept
func (H *HashSet[K]) Clear() {
	H.table.Clear()
}

// Begin - Returns an iterator to the first key, or End if the set is empty
func (H *HashSet[K]) Begin() HashSetIterator[K] {
	return H.table.Begin()
}

// End - Returns the pass-the-end iterator
func (H *HashSet[K]) End() HashSetIterator[K] {
	return H.table.End()
}

// Size - Returns the number of keys
func (H *HashSet[K]) Size() int {
	return H.table.Size()
}

// Capacity - Returns the number of buckets
func (H *HashSet[K]) Capacity() int {
	return H.table.Capacity()
}

// MaxLoad - Returns the load factor in integer percent that triggers growth
func (H *HashSet[K]) MaxLoad() uint8 {
	return H.table.MaxLoad()
}

// Empty - Returns true if the set holds no keys
func (H *HashSet[K]) Empty() bool {
	return H.table.Empty()
}

// Move - Returns a new HashSet owning every key of H, H is left empty with capacity 0
func (H *HashSet[K]) Move() *HashSet[K] {
	return &HashSet[K]{table: H.table.Move()}
}

// Release - Returns every key and the bucket array to the allocator
func (H *HashSet[K]) Release() {
	H.table.Release()
}

// Stat - Returns usage statistics, includeDistribution adds the number of keys per bucket
func (H *HashSet[K]) Stat(includeDistribution bool) Stat {
	return H.table.Stat(includeDistribution)
}

// GetStorageParameters - Returns the current shape of the set
func (H *HashSet[K]) GetStorageParameters() StorageParameters {
	return H.table.GetStorageParameters()
}
