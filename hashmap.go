// Package tablemap provides hash maps and hash sets for environments where every byte of memory is accounted for.
// Tables request every node, element and bucket array through an alloc.Allocator and report refused requests as
// errors of type crt.AllocationFailed instead of failing silently.
//
// HashMap, HashSet and HashMultiMap use separate chaining, elements never move in memory once inserted.
// OpenMap and OpenSet use linear probing, erasing from them re-probes every remaining element.
package tablemap

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/storage/separatechaining"
)

// HashMapIterator - Iterator over the key/value pairs of a HashMap or HashMultiMap
type HashMapIterator[K, V any] = separatechaining.Iterator[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]]

// HashMap - Map with unique keys backed by a separate chaining table
type HashMap[K, V any] struct {
	table *separatechaining.Table[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]]
}

// NewHashMap - Returns a pointer to a new empty HashMap.
//   - keyFuncs is the hash function and key equality, see package hashfunc for ready-made ones
//   - opts are any number of Option, WithCapacity and WithMaxLoad among others
//
// It returns:
//   - hashMap is a pointer to the created instance
//   - err is of type crt.InvalidConfiguration or crt.AllocationFailed
func NewHashMap[K, V any](keyFuncs hashfunc.KeyFuncs[K], opts ...Option) (hashMap *HashMap[K, V], err error) {
	table, err := separatechaining.NewTable[accessor.Pair[K, V], K, V, accessor.MapAccessor[K, V]](tableConf(keyFuncs, opts))
	if err != nil {
		return
	}

	hashMap = &HashMap[K, V]{table: table}

	return
}

// Insert - Adds key with value unless key already exists, in which case the stored value is left as it is.
//
// It returns:
//   - it is an iterator to the new or the existing pair
//   - inserted is true if the pair was added
//   - err is of type crt.AllocationFailed, the map is then unchanged
func (H *HashMap[K, V]) Insert(key K, value V) (it HashMapIterator[K, V], inserted bool, err error) {
	return H.table.InsertUnique(accessor.MakePair(key, value))
}

// InsertOrAssign - Adds key with value, or assigns value to the existing key.
//
// It returns:
//   - it is an iterator to the new or updated pair
//   - inserted is true if the pair was added, false if an existing value was assigned
//   - err is of type crt.AllocationFailed, the map is then unchanged
func (H *HashMap[K, V]) InsertOrAssign(key K, value V) (it HashMapIterator[K, V], inserted bool, err error) {
	it, inserted, err = H.table.InsertUnique(accessor.MakePair(key, value))
	if err != nil || inserted {
		return
	}

	*it.Value() = value

	return
}

// At - Returns a pointer to the value stored for key, found is false (and value nil) if there is none
func (H *HashMap[K, V]) At(key K) (value *V, found bool) {
	it := H.table.Find(key)
	if it.IsEnd() {
		return
	}

	return it.Value(), true
}

// Index - Returns a pointer to the value stored for key, storing the zero value for key first if there is none
func (H *HashMap[K, V]) Index(key K) (value *V, err error) {
	var zero V
	stored, err := H.table.FindOrInsert(accessor.MakePair(key, zero))
	if err != nil {
		return
	}

	value = &stored.Value

	return
}

// Contains - Returns true if key exists
func (H *HashMap[K, V]) Contains(key K) bool {
	return !H.table.Find(key).IsEnd()
}

// Find - Returns an iterator to the pair with key, or End if there is none
func (H *HashMap[K, V]) Find(key K) HashMapIterator[K, V] {
	return H.table.Find(key)
}

// Erase - Removes the pair it refers to and returns an iterator to the pair following it
func (H *HashMap[K, V]) Erase(it HashMapIterator[K, V]) (next HashMapIterator[K, V]) {
	next = it
	next.Next()
	H.table.Erase(it)

	return
}

// EraseKey - Removes the pair with key, returns the number of pairs removed (0 or 1)
func (H *HashMap[K, V]) EraseKey(key K) int {
	return H.table.EraseKey(key)
}

// Clear - Removes every pair, the capacity is kept
func (H *HashMap[K, V]) Clear() {
	H.table.Clear()
}

// Begin - Returns an iterator to the first pair, or End if the map is empty
func (H *HashMap[K, V]) Begin() HashMapIterator[K, V] {
	return H.table.Begin()
}

// End - Returns the pass-the-end iterator
func (H *HashMap[K, V]) End() HashMapIterator[K, V] {
	return H.table.End()
}

// Size - Returns the number of pairs
func (H *HashMap[K, V]) Size() int {
	return H.table.Size()
}

// Capacity - Returns the number of buckets
func (H *HashMap[K, V]) Capacity() int {
	return H.table.Capacity()
}

// MaxLoad - Returns the load factor in integer percent that triggers growth
func (H *HashMap[K, V]) MaxLoad() uint8 {
	return H.table.MaxLoad()
}

// Empty - Returns true if the map holds no pairs
func (H *HashMap[K, V]) Empty() bool {
	return H.table.Empty()
}

// Move - Returns a new HashMap owning every pair of H, H is left empty with capacity 0
func (H *HashMap[K, V]) Move() *HashMap[K, V] {
	return &HashMap[K, V]{table: H.table.Move()}
}

// Release - Returns every pair and the bucket array to the allocator
func (H *HashMap[K, V]) Release() {
	H.table.Release()
}

// Stat - Returns usage statistics, includeDistribution adds the number of pairs per bucket
func (H *HashMap[K, V]) Stat(includeDistribution bool) Stat {
	return H.table.Stat(includeDistribution)
}

// GetStorageParameters - Returns the current shape of the map
func (H *HashMap[K, V]) GetStorageParameters() StorageParameters {
	return H.table.GetStorageParameters()
}
