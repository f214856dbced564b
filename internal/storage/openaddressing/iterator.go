package openaddressing

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/internal/storage"
)

// Iterator - Refers to one occupied slot of a Table, or to the pass-the-end position when it holds no element.
// Any erase or growth re-probes every element into a new slot array, after which iterators taken before
// must not be used.
type Iterator[E, K, V any, A accessor.Accessor[E, K, V]] struct {
	slot    int
	element *E
	table   *Table[E, K, V, A]
}

// IsEnd - Returns true if the iterator is the pass-the-end iterator
func (I Iterator[E, K, V, A]) IsEnd() bool {
	return I.element == nil
}

// Next - Advances to the next occupied slot, or to the pass-the-end position.
// Advancing the pass-the-end iterator leaves it unchanged.
func (I *Iterator[E, K, V, A]) Next() {
	if I.element == nil {
		return
	}

	for n := I.slot + 1; n < I.table.capacity; n++ {
		if I.table.slots[n] != nil {
			I.slot = n
			I.element = I.table.slots[n]
			return
		}
	}

	*I = I.table.End()
}

// Element - Returns a pointer to the stored element. Must not be called on the pass-the-end iterator.
func (I Iterator[E, K, V, A]) Element() *E {
	storage.Require(I.element != nil, "dereferencing the end iterator")
	return I.element
}

// Key - Returns the key of the stored element. Must not be called on the pass-the-end iterator.
func (I Iterator[E, K, V, A]) Key() K {
	return I.table.accessor.Key(I.Element())
}

// Value - Returns a pointer to the value of the stored element. Must not be called on the pass-the-end iterator.
func (I Iterator[E, K, V, A]) Value() *V {
	return I.table.accessor.Value(I.Element())
}
