package separatechaining

import (
	"fmt"
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/model"
	"github.com/gostonefire/tablemap/internal/storage"
	"github.com/gostonefire/tablemap/internal/utils"
	"go.uber.org/zap"
)

// node - Owns exactly one element and the link to the next node in the same bucket
type node[E any] struct {
	next    *node[E]
	element E
}

// Table - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket heads a singly linked chain of individually allocated nodes, so elements never move in memory
// when the table grows. Keys may be unique (InsertUnique) or repeated (InsertEqual), nodes sharing a key are
// always kept next to each other within their chain.
type Table[E, K, V any, A accessor.Accessor[E, K, V]] struct {
	buckets         []*node[E]
	size            int
	capacity        int
	initialCapacity int
	maxLoad         uint8
	keyFuncs        hashfunc.KeyFuncs[K]
	accessor        A
	allocator       alloc.Allocator
	logger          *zap.Logger
}

// NewTable - Returns a pointer to a new instance of a Separate Chaining table.
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

	buckets, err := alloc.MakeSlice[*node[E]](tableConf.Allocator, tableConf.Capacity)
	if err != nil {
		err = fmt.Errorf("error while allocating bucket array: %w", err)
		return
	}

	table = &Table[E, K, V, A]{
		buckets:         buckets,
		capacity:        tableConf.Capacity,
		initialCapacity: tableConf.Capacity,
		maxLoad:         tableConf.MaxLoad,
		keyFuncs:        tableConf.KeyFuncs,
		allocator:       tableConf.Allocator,
		logger:          tableConf.Logger.With(zap.String("technique", crt.Name(crt.SeparateChaining))),
	}

	return
}

// Size - Returns the number of elements in the table
func (T *Table[E, K, V, A]) Size() int {
	return T.size
}

// Capacity - Returns the number of buckets in the backing array
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

// Begin - Returns an iterator to the first node in bucket ascending order, or End if the table is empty
func (T *Table[E, K, V, A]) Begin() Iterator[E, K, V, A] {
	for _, first := range T.buckets {
		if first != nil {
			return Iterator[E, K, V, A]{node: first, table: T}
		}
	}

	return T.End()
}

// End - Returns the pass-the-end iterator
func (T *Table[E, K, V, A]) End() Iterator[E, K, V, A] {
	return Iterator[E, K, V, A]{table: T}
}

// InsertUnique - Inserts element unless a node with an equal key already exists.
// The capacity check (and possible growth) always happens first, even if the key turns out to exist.
//   - element is the element to insert, it is copied into a newly allocated node
//
// It returns:
//   - it is an iterator to the new node, or to the existing node with an equal key
//   - inserted is true if a new node was created
//   - err is an allocation error, in which case the table holds the same elements as before the call
func (T *Table[E, K, V, A]) InsertUnique(element E) (it Iterator[E, K, V, A], inserted bool, err error) {
	err = T.ensureCapacity()
	if err != nil {
		return
	}

	key := T.accessor.Key(&element)
	n := T.bucketOf(key)
	for cur := T.buckets[n]; cur != nil; cur = cur.next {
		if T.keyFuncs.Equal(T.accessor.Key(&cur.element), key) {
			it = Iterator[E, K, V, A]{node: cur, table: T}
			return
		}
	}

	tmp, err := T.newNode(element)
	if err != nil {
		return
	}

	tmp.next = T.buckets[n]
	T.buckets[n] = tmp
	T.size++

	it = Iterator[E, K, V, A]{node: tmp, table: T}
	inserted = true

	return
}

// InsertEqual - Inserts element even if nodes with an equal key exist. The new node is linked directly after the
// first node with an equal key, keeping all nodes of a key contiguous, otherwise it becomes the new chain head.
//   - element is the element to insert, it is copied into a newly allocated node
//
// It returns:
//   - it is an iterator to the new node
//   - err is an allocation error, in which case the table holds the same elements as before the call
func (T *Table[E, K, V, A]) InsertEqual(element E) (it Iterator[E, K, V, A], err error) {
	err = T.ensureCapacity()
	if err != nil {
		return
	}

	tmp, err := T.newNode(element)
	if err != nil {
		return
	}

	key := T.accessor.Key(&element)
	n := T.bucketOf(key)
	for cur := T.buckets[n]; cur != nil; cur = cur.next {
		if T.keyFuncs.Equal(T.accessor.Key(&cur.element), key) {
			tmp.next = cur.next
			cur.next = tmp
			T.size++
			it = Iterator[E, K, V, A]{node: tmp, table: T}
			return
		}
	}

	tmp.next = T.buckets[n]
	T.buckets[n] = tmp
	T.size++
	it = Iterator[E, K, V, A]{node: tmp, table: T}

	return
}

// FindOrInsert - Returns the stored element with a key equal to the key of element, inserting element first if
// no such node exists.
//
// It returns:
//   - stored is a pointer to the element held by the table, it stays valid until the node is erased
//   - err is an allocation error, in which case the table holds the same elements as before the call
func (T *Table[E, K, V, A]) FindOrInsert(element E) (stored *E, err error) {
	it, _, err := T.InsertUnique(element)
	if err != nil {
		return
	}

	stored = &it.node.element

	return
}

// Find - Returns an iterator to the first node with a key equal to key, or End if there is none
func (T *Table[E, K, V, A]) Find(key K) Iterator[E, K, V, A] {
	if T.capacity == 0 {
		return T.End()
	}

	for cur := T.buckets[T.bucketOf(key)]; cur != nil; cur = cur.next {
		if T.keyFuncs.Equal(T.accessor.Key(&cur.element), key) {
			return Iterator[E, K, V, A]{node: cur, table: T}
		}
	}

	return T.End()
}

// Count - Returns the number of nodes with a key equal to key
func (T *Table[E, K, V, A]) Count(key K) (count int) {
	if T.capacity == 0 {
		return
	}

	for cur := T.buckets[T.bucketOf(key)]; cur != nil; cur = cur.next {
		if T.keyFuncs.Equal(T.accessor.Key(&cur.element), key) {
			count++
		}
	}

	return
}

// EqualRange - Returns the range [first, last) of all nodes with a key equal to key.
// If there are no such nodes both iterators are End.
func (T *Table[E, K, V, A]) EqualRange(key K) (first, last Iterator[E, K, V, A]) {
	first, last = T.End(), T.End()
	if T.capacity == 0 {
		return
	}

	n := T.bucketOf(key)
	for cur := T.buckets[n]; cur != nil; cur = cur.next {
		if !T.keyFuncs.Equal(T.accessor.Key(&cur.element), key) {
			continue
		}

		first.node = cur
		for next := cur.next; next != nil; next = next.next {
			if !T.keyFuncs.Equal(T.accessor.Key(&next.element), key) {
				last.node = next
				return
			}
		}

		for m := n + 1; m < T.capacity; m++ {
			if T.buckets[m] != nil {
				last.node = T.buckets[m]
				return
			}
		}

		return
	}

	return
}

// Erase - Unlinks and frees exactly the node referenced by it. Erasing End is a no-op.
// Iterators to other nodes stay valid.
//   - it must be an iterator obtained from this table
func (T *Table[E, K, V, A]) Erase(it Iterator[E, K, V, A]) {
	storage.Require(it.table == T, "erasing through an iterator from another table")
	if it.node == nil {
		return
	}

	for link := &T.buckets[T.bucketOf(T.accessor.Key(&it.node.element))]; *link != nil; link = &(*link).next {
		if *link == it.node {
			*link = it.node.next
			alloc.Delete(T.allocator, it.node)
			T.size--
			return
		}
	}
}

// EraseKey - Unlinks and frees every node with a key equal to key
//
// It returns:
//   - erased is the number of nodes removed
func (T *Table[E, K, V, A]) EraseKey(key K) (erased int) {
	if T.capacity == 0 {
		return
	}

	link := &T.buckets[T.bucketOf(key)]
	for *link != nil {
		cur := *link
		if T.keyFuncs.Equal(T.accessor.Key(&cur.element), key) {
			*link = cur.next
			alloc.Delete(T.allocator, cur)
			T.size--
			erased++
		} else {
			link = &cur.next
		}
	}

	return
}

// Clear - Frees every node. The capacity is left unchanged.
func (T *Table[E, K, V, A]) Clear() {
	for i, cur := range T.buckets {
		for cur != nil {
			next := cur.next
			alloc.Delete(T.allocator, cur)
			cur = next
		}
		T.buckets[i] = nil
	}

	T.size = 0
}

// Release - Frees every node and the backing array, leaving the table at size 0 and capacity 0.
// A released table may be used again, the next insert allocates a backing array of the initial capacity.
func (T *Table[E, K, V, A]) Release() {
	T.Clear()
	alloc.FreeSlice(T.allocator, T.buckets)
	T.buckets = nil
	T.capacity = 0
}

// Move - Transfers ownership of every node and the backing array to a new table which is returned.
// The receiver is left at size 0 and capacity 0.
func (T *Table[E, K, V, A]) Move() (moved *Table[E, K, V, A]) {
	moved = &Table[E, K, V, A]{}
	*moved = *T

	T.buckets = nil
	T.size = 0
	T.capacity = 0

	return
}

// GetStorageParameters - Returns a struct with storage parameters of the table
func (T *Table[E, K, V, A]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		Size:                         T.size,
		Capacity:                     T.capacity,
		InitialCapacity:              T.initialCapacity,
		MaxLoad:                      T.maxLoad,
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a model.Stat struct with information.
//   - includeDistribution set to true will include a slice with number of elements per bucket
func (T *Table[E, K, V, A]) Stat(includeDistribution bool) (stat model.Stat) {
	stat.Elements = T.size
	stat.Capacity = T.capacity
	stat.LoadPercent = utils.LoadPercent(T.size, T.capacity)

	if includeDistribution {
		stat.BucketDistribution = make([]int64, T.capacity)
	}

	for i, cur := range T.buckets {
		var chain int
		for ; cur != nil; cur = cur.next {
			chain++
		}

		if chain > 0 {
			stat.OccupiedBuckets++
		}
		if chain > stat.LongestRun {
			stat.LongestRun = chain
		}
		if includeDistribution {
			stat.BucketDistribution[i] = int64(chain)
		}
	}

	return
}
