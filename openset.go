package tablemap

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/storage/openaddressing"
)

// OpenSetIterator - Iterator over the keys of an OpenSet
type OpenSetIterator[K any] = openaddressing.Iterator[K, K, K, accessor.SetAccessor[K]]

// OpenSet - Set of unique keys backed by a linear probing table.
// Any erase or growth invalidates every iterator taken before it.
type OpenSet[K any] struct {
	table *openaddressing.Table[K, K, K, accessor.SetAccessor[K]]
}

// NewOpenSet - Returns a pointer to a new empty OpenSet.
//   - keyFuncs is the hash function and key equality, see package hashfunc for ready-made ones
//   - opts are any number of Option
//
// It returns:
//   - openSet is a pointer to the created instance
//   - err is of type crt.InvalidConfiguration or crt.AllocationFailed
func NewOpenSet[K any](keyFuncs hashfunc.KeyFuncs[K], opts ...Option) (openSet *OpenSet[K], err error) {
	table, err := openaddressing.NewTable[K, K, K, accessor.SetAccessor[K]](tableConf(keyFuncs, opts))
	if err != nil {
		return
	}

	openSet = &OpenSet[K]{table: table}

	return
}

// Insert - Adds key unless it already exists
//
// It returns:
//   - it is an iterator to the new or the existing key
//   - inserted is true if the key was added
//   - err is of type crt.AllocationFailed, the set is then unchanged
func (O *OpenSet[K]) Insert(key K) (it OpenSetIterator[K], inserted bool, err error) {
	return O.table.InsertUnique(key)
}

// Contains - Returns true if key exists
func (O *OpenSet[K]) Contains(key K) bool {
	return !O.table.Find(key).IsEnd()
}

// Find - Returns an iterator to key, or End if it does not exist
func (O *OpenSet[K]) Find(key K) OpenSetIterator[K] {
	return O.table.Find(key)
}

// Erase - Removes the key it refers to. Every remaining key is re-probed, so no iterator survives the call.
// It returns an error of type crt.AllocationFailed if the re-probe could not get memory, the key is then kept.
func (O *OpenSet[K]) Erase(it OpenSetIterator[K]) error {
	return O.table.Erase(it)
}

// EraseKey - Removes key
//
// It returns:
//   - erased is the number of keys removed (0 or 1)
//   - err is of type crt.AllocationFailed, the key is then kept
func (O *OpenSet[K]) EraseKey(key K) (erased int, err error) {
	return O.table.EraseKey(key)
}

// Clear - Removes every key, the capacity is kept
func (O *OpenSet[K]) Clear() {
	O.table.Clear()
}

// Begin - Returns an iterator to the first key, or End if the set is empty
func (O *OpenSet[K]) Begin() OpenSetIterator[K] {
	return O.table.Begin()
}

// End - Returns the pass-the-end iterator
func (O *OpenSet[K]) End() OpenSetIterator[K] {
	return O.table.End()
}

// Size - Returns the number of keys
func (O *OpenSet[K]) Size() int {
	return O.table.Size()
}

// Capacity - Returns the number of slots
func (O *OpenSet[K]) Capacity() int {
	return O.table.Capacity()
}

// MaxLoad - Returns the load factor in integer percent that triggers growth
func (O *OpenSet[K]) MaxLoad() uint8 {
	return O.table.MaxLoad()
}

// Empty - Returns true if the set holds no keys
func (O *OpenSet[K]) Empty() bool {
	return O.table.Empty()
}

// Move - Returns a new OpenSet owning every key of O, O is left empty with capacity 0
func (O *OpenSet[K]) Move() *OpenSet[K] {
	return &OpenSet[K]{table: O.table.Move()}
}

// Release - Returns every key and the slot array to the allocator
func (O *OpenSet[K]) Release() {
	O.table.Release()
}

// Stat - Returns usage statistics, includeDistribution adds the number of keys per home slot
func (O *OpenSet[K]) Stat(includeDistribution bool) Stat {
	return O.table.Stat(includeDistribution)
}

// GetStorageParameters - Returns the current shape of the set
func (O *OpenSet[K]) GetStorageParameters() StorageParameters {
	return O.table.GetStorageParameters()
}
