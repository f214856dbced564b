package openaddressing

import (
	"fmt"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/internal/hash"
	"github.com/gostonefire/tablemap/internal/storage"
	"github.com/gostonefire/tablemap/internal/utils"
	"go.uber.org/zap"
)

// homeOf - Returns the home slot for key in a slot array of the given capacity
func (T *Table[E, K, V, A]) homeOf(key K, capacity int) int {
	return hash.BucketIndex(T.keyFuncs.Hash(key), capacity)
}

// probing - Is the linear probing algorithm shared by insert and lookup.
// It walks the probe sequence of key until it reaches either a slot holding an equal key or an empty slot.
//
// It returns:
//   - slot is the index of the slot where probing stopped, -1 if every slot was visited without result
//   - found is true if slot holds an element with an equal key, false if slot is empty
func (T *Table[E, K, V, A]) probing(key K) (slot int, found bool) {
	probe := T.homeOf(key, T.capacity)
	for n := 0; n < T.capacity; n++ {
		if T.slots[probe] == nil {
			slot = probe
			return
		}

		if T.keyFuncs.Equal(T.accessor.Key(T.slots[probe]), key) {
			slot = probe
			found = true
			return
		}

		probe = hash.NextProbe(probe, T.capacity)
	}

	// Every slot is occupied by other keys, only reachable if growth is unable to keep up
	slot = -1

	return
}

// place - Puts element into the first empty slot of its probe sequence in slots.
// The caller guarantees slots has at least one empty slot and holds no element with an equal key.
func (T *Table[E, K, V, A]) place(slots []*E, element *E) {
	capacity := len(slots)
	home := T.homeOf(T.accessor.Key(element), capacity)
	for i := 0; i < capacity; i++ {
		probe := hash.LinearProbe(home, i, capacity)
		if slots[probe] == nil {
			slots[probe] = element
			return
		}
	}
}

// newElement - Allocates an element holding a copy of element
func (T *Table[E, K, V, A]) newElement(element E) (e *E, err error) {
	e, err = alloc.New[E](T.allocator)
	if err != nil {
		T.logger.Warn("element allocation refused", zap.Int("size", T.size), zap.Error(err))
		err = fmt.Errorf("error while allocating element: %w", err)
		return
	}

	*e = element

	return
}

// rehash - Allocates a new slot array of the given capacity and re-probes every element into it, skipping the
// element in slot skip (-1 skips nothing). Element pointers are moved, never the elements themselves.
// If the array can not be allocated the table is left untouched.
func (T *Table[E, K, V, A]) rehash(capacity, skip int) (err error) {
	slots, err := alloc.MakeSlice[*E](T.allocator, capacity)
	if err != nil {
		T.logger.Warn("slot array allocation refused", zap.Int("capacity", capacity), zap.Error(err))
		err = fmt.Errorf("error while allocating slot array of %d slots: %w", capacity, err)
		return
	}

	for i, e := range T.slots {
		if e != nil && i != skip {
			T.place(slots, e)
		}
	}

	T.logger.Debug("table rehashed",
		zap.Int("old capacity", T.capacity),
		zap.Int("new capacity", capacity),
		zap.Int("size", T.size),
	)

	alloc.FreeSlice(T.allocator, T.slots)
	T.slots = slots
	T.capacity = capacity

	return
}

// ensureCapacity - Doubles the capacity if the table has reached its max load.
// A table without slot array (moved or released) gets one of the initial capacity.
func (T *Table[E, K, V, A]) ensureCapacity() (err error) {
	if T.slots == nil {
		var slots []*E
		slots, err = alloc.MakeSlice[*E](T.allocator, T.initialCapacity)
		if err != nil {
			err = fmt.Errorf("error while allocating slot array: %w", err)
			return
		}
		T.slots = slots
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

	err = T.rehash(newCapacity, -1)

	return
}
