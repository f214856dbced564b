package tablemap

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/storage/openaddressing"
)

// OpenMapIterator - Iterator over the key/value pairs of an OpenMap
type OpenMapIterator[K, V any] = openaddressing.Iterator[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]]

// OpenMap - Map with unique keys backed by a linear probing table.
// Any erase or growth invalidates every iterator taken before it.
type OpenMap[K, V any] struct {
	table *openaddressing.Table[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]]
}

// NewOpenMap - Returns a pointer to a new empty OpenMap.
//   - keyFuncs is the hash function and key equality, see package hashfunc for ready-made ones
//   - opts are any number of Option
//
// It returns:
//   - openMap is a pointer to the created instance
//   - err is of type crt.InvalidConfiguration or crt.AllocationFailed
func NewOpenMap[K, V any](keyFuncs hashfunc.KeyFuncs[K], opts ...Option) (openMap *OpenMap[K, V], err error) {
	table, err := openaddressing.NewTable[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]](tableConf(keyFuncs, opts))
	if err != nil {
		return
	}

	openMap = &OpenMap[K, V]{table: table}

	return
}

// Insert - Adds key with value unless key already exists, in which case the stored value is left as it is.
//
// It returns:
//   - it is an iterator to the new or the existing pair
//   - inserted is true if the pair was added
//   - err is of type crt.AllocationFailed, the map is then unchanged
func (O *OpenMap[K, V]) Insert(key K, value V) (it OpenMapIterator[K, V], inserted bool, err error) {
	return O.table.InsertUnique(accessor.MakePair(key, value))
}

// InsertOrAssign - Adds key with value, or assigns value to the existing key.
//
// It returns:
//   - it is an iterator to the new or updated pair
//   - inserted is true if the pair was added, false if an existing value was assigned
//   - err is of type crt.AllocationFailed, the map is then unchanged
func (O *OpenMap[K, V]) InsertOrAssign(key K, value V) (it OpenMapIterator[K, V], inserted bool, err error) {
	it, inserted, err = O.table.InsertUnique(accessor.MakePair(key, value))
	if err != nil || inserted {
		return
	}

	*it.Value() = value

	return
}

// At - Returns a pointer to the value stored for key, found is false (and value nil) if there is none
func (O *OpenMap[K, V]) At(key K) (value *V, found bool) {
	it := O.table.Find(key)
	if it.IsEnd() {
		return
	}

	return it.Value(), true
}

// Index - Returns a pointer to the value stored for key, storing the zero value for key first if there is none
func (O *OpenMap[K, V]) Index(key K) (value *V, err error) {
	var zero V
	stored, err := O.table.FindOrInsert(accessor.MakePair(key, zero))
	if err != nil {
		return
	}

	value = &stored.Value

	return
}

// Contains - Returns true if key exists
func (O *OpenMap[K, V]) Contains(key K) bool {
	return !O.table.Find(key).IsEnd()
}

// Find - Returns an iterator to the pair with key, or End if there is none
func (O *OpenMap[K, V]) Find(key K) OpenMapIterator[K, V] {
	return O.table.Find(key)
}

// Erase - Removes the pair it refers to. Every remaining pair is re-probed, so no iterator survives the call.
// It returns an error of type crt.AllocationFailed if the re-probe could not get memory, the pair is then kept.
func (O *OpenMap[K, V]) Erase(it OpenMapIterator[K, V]) error {
	return O.table.Erase(it)
}

// EraseKey - Removes the pair with key
//
// It returns:
//   - erased is the number of pairs removed (0 or 1)
//   - err is of type crt.AllocationFailed, the pair is then kept
func (O *OpenMap[K, V]) EraseKey(key K) (erased int, err error) {
	return O.table.EraseKey(key)
}

// Clear - Removes every pair, the capacity is kept
func (O *OpenMap[K, V]) Clear() {
	O.table.Clear()
}

// Begin - Returns an iterator to the first pair, or End if the map is empty
func (O *OpenMap[K, V]) Begin() OpenMapIterator[K, V] {
	return O.table.Begin()
}

// End - Returns the pass-the-end iterator
func (O *OpenMap[K, V]) End() OpenMapIterator[K, V] {
	return O.table.End()
}

// Size - Returns the number of pairs
func (O *OpenMap[K, V]) Size() int {
	return O.table.Size()
}

// Capacity - Returns the number of slots
func (O *OpenMap[K, V]) Capacity() int {
	return O.table.Capacity()
}

// MaxLoad - Returns the load factor in integer percent that triggers growth
func (O *OpenMap[K, V]) MaxLoad() uint8 {
	return O.table.MaxLoad()
}

// Empty - Returns true if the map holds no pairs
func (O *OpenMap[K, V]) Empty() bool {
	return O.table.Empty()
}

// Move - Returns a new OpenMap owning every pair of O, O is left empty with capacity 0
func (O *OpenMap[K, V]) Move() *OpenMap[K, V] {
	return &OpenMap[K, V]{table: O.table.Move()}
}

// Release - Returns every pair and the slot array to the allocator
func (O *OpenMap[K, V]) Release() {
	O.table.Release()
}

// Stat - Returns usage statistics, includeDistribution adds the number of pairs per home slot
func (O *OpenMap[K, V]) Stat(includeDistribution bool) Stat {
	return O.table.Stat(includeDistribution)
}

// GetStorageParameters - Returns the current shape of the map
func (O *OpenMap[K, V]) GetStorageParameters() StorageParameters {
	return O.table.GetStorageParameters()
}
