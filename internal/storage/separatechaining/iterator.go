package separatechaining

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/internal/storage"
)

// Iterator - Refers to one node of a Table, or to the pass-the-end position when it holds no node.
// Iterators are plain values and compare equal with == when they refer to the same node of the same table.
// An iterator stays valid until the node it refers to is erased, growth only relinks nodes.
type Iterator[E, K, V any, A accessor.Accessor[E, K, V]] struct {
	node  *node[E]
	table *Table[E, K, V, A]
}

// IsEnd - Returns true if the iterator is the pass-the-end iterator
func (I Iterator[E, K, V, A]) IsEnd() bool {
	return I.node == nil
}

// Next - Advances to the next node in the chain, or to the head of the next non-empty bucket when the chain
// is exhausted, or to the pass-the-end position. Advancing the pass-the-end iterator leaves it unchanged.
func (I *Iterator[E, K, V, A]) Next() {
	if I.node == nil {
		return
	}

	old := I.node
	I.node = old.next
	if I.node != nil {
		return
	}

	for n := I.table.bucketOf(I.table.accessor.Key(&old.element)) + 1; n < I.table.capacity; n++ {
		if I.table.buckets[n] != nil {
			I.node = I.table.buckets[n]
			return
		}
	}
}

// Element - Returns a pointer to the stored element. Must not be called on the pass-the-end iterator.
func (I Iterator[E, K, V, A]) Element() *E {
	storage.Require(I.node != nil, "dereferencing the end iterator")
	return &I.node.element
}

// Key - Returns the key of the stored element. Must not be called on the pass-the-end iterator.
func (I Iterator[E, K, V, A]) Key() K {
	return I.table.accessor.Key(I.Element())
}

// Value - Returns a pointer to the value of the stored element. Must not be called on the pass-the-end iterator.
func (I Iterator[E, K, V, A]) Value() *V {
	return I.table.accessor.Value(I.Element())
}
