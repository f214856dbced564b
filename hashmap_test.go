//go:build unit

package tablemap

import (
	"fmt"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewHashMap(t *testing.T) {
	t.Run("creates hash map with defaults", func(t *testing.T) {
		// Execute
		hm, err := NewHashMap[string, int](hashfunc.String[string]{})

		// Check
		require.NoError(t, err, "creates hash map")
		sp := hm.GetStorageParameters()
		assert.Equal(t, crt.SeparateChaining, sp.CollisionResolutionTechnique, "separate chaining")
		assert.Equal(t, 12, hm.Capacity(), "default capacity")
		assert.Equal(t, uint8(75), hm.MaxLoad(), "default max load")
		assert.True(t, hm.Empty(), "empty")
	})

	t.Run("applies options", func(t *testing.T) {
		// Execute
		hm, err := NewHashMap[int, int](hashfunc.Integer[int]{}, WithCapacity(5), WithMaxLoad(50))

		// Check
		require.NoError(t, err, "creates hash map")
		assert.Equal(t, 5, hm.Capacity(), "capacity")
		assert.Equal(t, uint8(50), hm.MaxLoad(), "max load")
	})

	t.Run("rejects invalid options", func(t *testing.T) {
		// Execute
		_, err := NewHashMap[int, int](hashfunc.Integer[int]{}, WithCapacity(0))

		// Check
		assert.ErrorIs(t, err, crt.InvalidConfiguration{}, "zero capacity")
	})
}

func TestHashMap_Insert(t *testing.T) {
	t.Run("inserts once and keeps first value", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap[string, int](hashfunc.String[string]{})
		require.NoError(t, err, "creates hash map")

		// Execute
		it1, ok1, err1 := hm.Insert("one", 1)
		it2, ok2, err2 := hm.Insert("one", 2)

		// Check
		assert.NoError(t, err1, "first insert")
		assert.NoError(t, err2, "second insert")
		assert.True(t, ok1, "inserted")
		assert.False(t, ok2, "refused")
		assert.Equal(t, it1, it2, "same pair")
		assert.Equal(t, 1, *it2.Value(), "first value kept")
		assert.Equal(t, 1, hm.Size(), "one pair")
	})

	t.Run("insert or assign overwrites", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap[string, int](hashfunc.String[string]{})
		require.NoError(t, err, "creates hash map")

		// Execute
		_, ok1, err1 := hm.InsertOrAssign("one", 1)
		_, ok2, err2 := hm.InsertOrAssign("one", 2)

		// Check
		assert.NoError(t, err1, "first insert")
		assert.NoError(t, err2, "assign")
		assert.True(t, ok1, "inserted")
		assert.False(t, ok2, "assigned")
		v, found := hm.At("one")
		require.True(t, found, "found")
		assert.Equal(t, 2, *v, "value assigned")
	})
}

func TestHashMap_Lookup(t *testing.T) {
	t.Run("at, index and contains", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap[string, []string](hashfunc.String[string]{})
		require.NoError(t, err, "creates hash map")

		// Execute
		v, err := hm.Index("fruit")
		require.NoError(t, err, "default inserts")
		*v = append(*v, "apple")
		v, err = hm.Index("fruit")
		require.NoError(t, err, "finds")
		*v = append(*v, "pear")

		// Check
		got, found := hm.At("fruit")
		assert.True(t, found, "found")
		assert.Equal(t, []string{"apple", "pear"}, *got, "value updated through pointer")
		missing, found := hm.At("vegetable")
		assert.False(t, found, "miss")
		assert.Nil(t, missing, "nil on miss")
		assert.True(t, hm.Contains("fruit"), "contains")
		assert.False(t, hm.Contains("vegetable"), "does not contain")
		assert.True(t, hm.Find("vegetable").IsEnd(), "find misses")
	})
}

func TestHashMap_Erase(t *testing.T) {
	t.Run("erase while iterating", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap[int, string](hashfunc.Integer[int]{}, WithCapacity(4))
		require.NoError(t, err, "creates hash map")
		for k := 0; k < 40; k++ {
			_, _, err = hm.Insert(k, fmt.Sprint(k))
			require.NoError(t, err, "insert")
		}

		// Execute
		for it := hm.Begin(); !it.IsEnd(); {
			if it.Key()%2 == 0 {
				it = hm.Erase(it)
			} else {
				it.Next()
			}
		}

		// Check
		assert.Equal(t, 20, hm.Size(), "odd keys left")
		for k := 0; k < 40; k++ {
			assert.Equalf(t, k%2 == 1, hm.Contains(k), "presence of key %d", k)
		}
		assert.Equal(t, 1, hm.EraseKey(1), "erase by key")
		assert.Equal(t, 0, hm.EraseKey(1), "already gone")
	})

	t.Run("clear twice", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap[int, int](hashfunc.Integer[int]{})
		require.NoError(t, err, "creates hash map")
		_, _, _ = hm.Insert(1, 1)

		// Execute and Check
		for i := 0; i < 2; i++ {
			hm.Clear()
			assert.Equal(t, 0, hm.Size(), "empty")
			assert.Equal(t, hm.End(), hm.Begin(), "begin is end")
		}
	})
}

func TestHashMap_Move(t *testing.T) {
	t.Run("moves every pair", func(t *testing.T) {
		// Prepare
		heap := alloc.NewHeap()
		a, err := NewHashMap[int, int](hashfunc.Integer[int]{}, WithAllocator(heap))
		require.NoError(t, err, "creates hash map")
		for k := 0; k < 10; k++ {
			_, _, err = a.Insert(k, k*k)
			require.NoError(t, err, "insert")
		}

		// Execute
		b := a.Move()

		// Check
		assert.Equal(t, 0, a.Size(), "source size")
		assert.Equal(t, 0, a.Capacity(), "source capacity")
		assert.Equal(t, 10, b.Size(), "destination size")
		v, found := b.At(7)
		assert.True(t, found, "destination finds")
		assert.Equal(t, 49, *v, "value")

		b.Release()
		a.Release()
		assert.Equal(t, 0, heap.Stats().Live(), "all memory returned")
	})
}

func TestHashMap_Stat(t *testing.T) {
	t.Run("reports usage", func(t *testing.T) {
		// Prepare
		hm, err := NewHashMap[int, int](hashfunc.Integer[int]{}, WithCapacity(10), WithMaxLoad(100))
		require.NoError(t, err, "creates hash map")
		for _, k := range []int{1, 11, 21, 2} {
			_, _, err = hm.Insert(k, k)
			require.NoError(t, err, "insert")
		}

		// Execute
		stat := hm.Stat(false)

		// Check
		assert.Equal(t, 4, stat.Elements, "elements")
		assert.Equal(t, 2, stat.OccupiedBuckets, "occupied buckets")
		assert.Equal(t, 3, stat.LongestRun, "longest chain")
		assert.Equal(t, 40, stat.LoadPercent, "load percent")
		assert.Nil(t, stat.BucketDistribution, "no distribution")
	})
}
