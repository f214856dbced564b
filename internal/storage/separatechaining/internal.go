package separatechaining

import (
	"fmt"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/internal/hash"
	"github.com/gostonefire/tablemap/internal/storage"
	"github.com/gostonefire/tablemap/internal/utils"
	"go.uber.org/zap"
)

// bucketOf - Returns the bucket number for key given the current capacity
func (T *Table[E, K, V, A]) bucketOf(key K) int {
	return hash.BucketIndex(T.keyFuncs.Hash(key), T.capacity)
}

// newNode - Allocates a node holding element, not yet linked into any chain
func (T *Table[E, K, V, A]) newNode(element E) (n *node[E], err error) {
	n, err = alloc.New[node[E]](T.allocator)
	if err != nil {
		T.logger.Warn("node allocation refused", zap.Int("size", T.size), zap.Error(err))
		err = fmt.Errorf("error while allocating node: %w", err)
		return
	}

	n.element = element

	return
}

// ensureCapacity - Doubles the capacity and relinks every node into a new backing array if the table has
// reached its max load. A table without backing array (moved or released) gets one of the initial capacity.
// If the new array can not be allocated the table is left untouched.
func (T *Table[E, K, V, A]) ensureCapacity() (err error) {
	if T.buckets == nil {
		var buckets []*node[E]
		buckets, err = alloc.MakeSlice[*node[E]](T.allocator, T.initialCapacity)
		if err != nil {
			err = fmt.Errorf("error while allocating bucket array: %w", err)
			return
		}
		T.buckets = buckets
		T.capacity = T.initialCapacity
	}

	if !storage.NeedsGrowth(T.size, T.capacity, T.maxLoad) {
		return
	}

	newCapacity, ok := utils.DoubleCapacity(T.capacity)
	if !ok {
		err = crt.AllocationFailed{Msg: fmt.Sprintf("capacity %d can not grow any further", T.capacity)}
		return
	}

	newBuckets, err := alloc.MakeSlice[*node[E]](T.allocator, newCapacity)
	if err != nil {
		T.logger.Warn("bucket array allocation refused", zap.Int("capacity", newCapacity), zap.Error(err))
		err = fmt.Errorf("error while growing bucket array to %d buckets: %w", newCapacity, err)
		return
	}

	for _, cur := range T.buckets {
		for cur != nil {
			next := cur.next
			k := hash.BucketIndex(T.keyFuncs.Hash(T.accessor.Key(&cur.element)), newCapacity)
			cur.next = newBuckets[k]
			newBuckets[k] = cur
			cur = next
		}
	}

	T.logger.Debug("table rehashed",
		zap.Int("old capacity", T.capacity),
		zap.Int("new capacity", newCapacity),
		zap.Int("size", T.size),
	)

	alloc.FreeSlice(T.allocator, T.buckets)
	T.buckets = newBuckets
	T.capacity = newCapacity

	return
}
