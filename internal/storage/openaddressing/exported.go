package openaddressing

import (
	"fmt"
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/hash"
	"github.com/gostonefire/tablemap/internal/model"
	"github.com/gostonefire/tablemap/internal/storage"
	"github.com/gostonefire/tablemap/internal/utils"
	"go.uber.org/zap"
)

// Table - Represents an implementation of the Linear Probing Collision Resolution Technique.
// Every slot is either empty or holds a pointer to one individually allocated element. In case of a collision it
// probes forward one slot at a time, wrapping at the end of the array, until it finds an empty slot.
// Keys are unique. Erase does not leave tombstones, instead every remaining element is re-probed into a new
// slot array of the same capacity, so an empty slot always ends a probe sequence.
type Table[E, K, V any, A accessor.Accessor[E, K, V]] struct {
	slots           []*E
	size            int
	capacity        int
	initialCapacity int
	maxLoad         uint8
	keyFuncs        hashfunc.KeyFuncs[K]
	accessor        A
	allocator       alloc.Allocator
	logger          *zap.Logger
}

// NewTable - Returns a pointer to a new instance of a Linear Probing table.
//   - tableConf is a storage.TableConf struct providing configuration parameters
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is of type crt.InvalidConfiguration or an allocation error from the allocator
func NewTable[E, K, V any, A accessor.Accessor[E, K, V]](tableConf storage.TableConf[K]) (table *Table[E, K, V, A], err error) {
	err = tableConf.Validate()
	if err != nil {
		return
	}

	slots, err := alloc.MakeSlice[*E](tableConf.Allocator, tableConf.Capacity)
	if err != nil {
		err = fmt.Errorf("error while allocating slot array: %w", err)
		return
	}

	table = &Table[E, K, V, A]{
		slots:           slots,
		capacity:        tableConf.Capacity,
		initialCapacity: tableConf.Capacity,
		maxLoad:         tableConf.MaxLoad,
		keyFuncs:        tableConf.KeyFuncs,
		allocator:       tableConf.Allocator,
		logger:          tableConf.Logger.With(zap.String("technique", crt.Name(crt.LinearProbing))),
	}

	return
}

// Size - Returns the number of elements in the table
func (T *Table[E, K, V, A]) Size() int {
	return T.size
}

// Capacity - Returns the number of slots in the backing array
func (T *Table[E, K, V, A]) Capacity() int {
	return T.capacity
}

// MaxLoad - Returns the load factor in integer percent that triggers growth
func (T *Table[E, K, V, A]) MaxLoad() uint8 {
	return T.maxLoad
}

// Empty - Returns true if the table holds no elements
func (T *Table[E, K, V, A]) Empty() bool {
	return T.size == 0
}

// Begin - Returns an iterator to the first occupied slot, or End if the table is empty
func (T *Table[E, K, V, A]) Begin() Iterator[E, K, V, A] {
	for i, e := range T.slots {
		if e != nil {
			return Iterator[E, K, V, A]{slot: i, element: e, table: T}
		}
	}

	return T.End()
}

// End - Returns the pass-the-end iterator
func (T *Table[E, K, V, A]) End() Iterator[E, K, V, A] {
	return Iterator[E, K, V, A]{table: T}
}

// InsertUnique - Inserts element unless an element with an equal key already exists.
// The capacity check (and possible growth) always happens first, even if the key turns out to exist.
//   - element is the element to insert, it is copied into a newly allocated element
//
// It returns:
//   - it is an iterator to the new element, or to the existing element with an equal key
//   - inserted is true if a new element was stored
//   - err is an allocation error, in which case the table holds the same elements as before the call
func (T *Table[E, K, V, A]) InsertUnique(element E) (it Iterator[E, K, V, A], inserted bool, err error) {
	err = T.ensureCapacity()
	if err != nil {
		return
	}

	slot, found := T.probing(T.accessor.Key(&element))
	if slot < 0 {
		err = crt.AllocationFailed{Msg: fmt.Sprintf("no free slot among %d slots", T.capacity)}
		return
	}

	if found {
		it = Iterator[E, K, V, A]{slot: slot, element: T.slots[slot], table: T}
		return
	}

	e, err := T.newElement(element)
	if err != nil {
		return
	}

	T.slots[slot] = e
	T.size++

	it = Iterator[E, K, V, A]{slot: slot, element: e, table: T}
	inserted = true

	return
}

// FindOrInsert - Returns the stored element with a key equal to the key of element, inserting element first if
// no such element exists.
//
// It returns:
//   - stored is a pointer to the element held by the table, it stays valid until the element is erased
//   - err is an allocation error, in which case the table holds the same elements as before the call
func (T *Table[E, K, V, A]) FindOrInsert(element E) (stored *E, err error) {
	it, _, err := T.InsertUnique(element)
	if err != nil {
		return
	}

	stored = it.element

	return
}

// Find - Returns an iterator to the element with a key equal to key, or End if there is none.
// An empty slot met before an equal key ends the search.
func (T *Table[E, K, V, A]) Find(key K) Iterator[E, K, V, A] {
	if T.capacity == 0 {
		return T.End()
	}

	slot, found := T.probing(key)
	if !found {
		return T.End()
	}

	return Iterator[E, K, V, A]{slot: slot, element: T.slots[slot], table: T}
}

// Count - Returns 1 if an element with a key equal to key exists, otherwise 0
func (T *Table[E, K, V, A]) Count(key K) int {
	if T.Find(key).IsEnd() {
		return 0
	}

	return 1
}

// Erase - Frees the element referenced by it, empties its slot and re-probes every remaining element into a
// new slot array of the same capacity. Erasing End is a no-op. All iterators are invalidated by a successful erase.
//   - it must be an iterator obtained from this table since its last erase or growth
//
// It returns:
//   - err is an allocation error for the new slot array, in which case the element is not erased
func (T *Table[E, K, V, A]) Erase(it Iterator[E, K, V, A]) (err error) {
	storage.Require(it.table == T, "erasing through an iterator from another table")
	if it.element == nil {
		return
	}
	storage.Require(it.slot < T.capacity && T.slots[it.slot] == it.element, "erasing through an invalidated iterator")

	err = T.rehash(T.capacity, it.slot)
	if err != nil {
		err = fmt.Errorf("error while erasing element: %w", err)
		return
	}

	alloc.Delete(T.allocator, it.element)
	T.size--

	return
}

// EraseKey - Erases the element with a key equal to key, if any
//
// It returns:
//   - erased is the number of elements removed, 0 or 1
//   - err is an allocation error for the new slot array, in which case the element is not erased
func (T *Table[E, K, V, A]) EraseKey(key K) (erased int, err error) {
	it := T.Find(key)
	if it.IsEnd() {
		return
	}

	err = T.Erase(it)
	if err != nil {
		return
	}

	erased = 1

	return
}

// Clear - Frees every element and empties every slot. The capacity is left unchanged.
func (T *Table[E, K, V, A]) Clear() {
	for i, e := range T.slots {
		if e != nil {
			alloc.Delete(T.allocator, e)
			T.slots[i] = nil
		}
	}

	T.size = 0
}

// Release - Frees every element and the backing array, leaving the table at size 0 and capacity 0.
// A released table may be used again, the next insert allocates a backing array of the initial capacity.
func (T *Table[E, K, V, A]) Release() {
	T.Clear()
	alloc.FreeSlice(T.allocator, T.slots)
	T.slots = nil
	T.capacity = 0
}

// Move - Transfers ownership of every element and the backing array to a new table which is returned.
// The receiver is left at size 0 and capacity 0.
func (T *Table[E, K, V, A]) Move() (moved *Table[E, K, V, A]) {
	moved = &Table[E, K, V, A]{}
	*moved = *T

	T.slots = nil
	T.size = 0
	T.capacity = 0

	return
}

// GetStorageParameters - Returns a struct with storage parameters of the table
func (T *Table[E, K, V, A]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		Size:                         T.size,
		Capacity:                     T.capacity,
		InitialCapacity:              T.initialCapacity,
		MaxLoad:                      T.maxLoad,
	}

	return
}

// Stat - Walks through the entire set of slots and produce a model.Stat struct with information.
// LongestRun is the longest distance any element sits from its home slot.
//   - includeDistribution set to true will include a slice with number of elements per home slot
func (T *Table[E, K, V, A]) Stat(includeDistribution bool) (stat model.Stat) {
	stat.Elements = T.size
	stat.Capacity = T.capacity
	stat.LoadPercent = utils.LoadPercent(T.size, T.capacity)

	if includeDistribution {
		stat.BucketDistribution = make([]int64, T.capacity)
	}

	for i, e := range T.slots {
		if e == nil {
			continue
		}

		stat.OccupiedBuckets++
		home := T.homeOf(T.accessor.Key(e), T.capacity)
		if d := hash.Displacement(home, i, T.capacity); d > stat.LongestRun {
			stat.LongestRun = d
		}
		if includeDistribution {
			stat.BucketDistribution[home]++
		}
	}

	return
}
