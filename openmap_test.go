//go:build unit

package tablemap

import (
	"github.com/gostonefire/tablemap/accessor"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/config"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"testing"
	"unsafe"
)

func TestOpenMap(t *testing.T) {
	t.Run("keeps colliding keys reachable after erase", func(t *testing.T) {
		// Prepare
		om, err := NewOpenMap[int, string](hashfunc.Integer[int]{}, WithCapacity(10))
		require.NoError(t, err, "creates open map")
		for _, k := range []int{8, 18, 28} {
			_, _, err = om.Insert(k, "v")
			require.NoError(t, err, "insert")
		}
		_, _, err = om.InsertOrAssign(28, "twenty-eight")
		require.NoError(t, err, "assign")

		// Execute
		err = om.Erase(om.Find(18))

		// Check
		assert.NoError(t, err, "erase")
		v, found := om.At(28)
		require.True(t, found, "finds 28")
		assert.Equal(t, "twenty-eight", *v, "assigned value")
		assert.False(t, om.Contains(18), "18 gone")
		assert.Equal(t, 2, om.Size(), "two pairs")
	})

	t.Run("index inserts zero value", func(t *testing.T) {
		// Prepare
		om, err := NewOpenMap[string, int](hashfunc.String[string]{})
		require.NoError(t, err, "creates open map")

		// Execute
		for _, word := range []string{"to", "be", "or", "not", "to", "be"} {
			count, err := om.Index(word)
			require.NoError(t, err, "index")
			*count++
		}

		// Check
		assert.Equal(t, 4, om.Size(), "distinct words")
		two, _ := om.At("to")
		assert.Equal(t, 2, *two, "count of to")
		one, _ := om.At("not")
		assert.Equal(t, 1, *one, "count of not")
	})

	t.Run("keeps the pair when erase can not get memory", func(t *testing.T) {
		// Prepare
		budget := 8*unsafe.Sizeof((*accessor.Pair[int, int])(nil)) + 4*unsafe.Sizeof(accessor.Pair[int, int]{})
		om, err := NewOpenMap[int, int](hashfunc.Integer[int]{}, WithCapacity(8), WithAllocator(alloc.NewFixed(budget)))
		require.NoError(t, err, "creates open map")
		for k := 0; k < 4; k++ {
			_, _, err = om.Insert(k, k)
			require.NoError(t, err, "insert")
		}

		// Execute
		erased, err := om.EraseKey(2)
		_, _, errInsert := om.Insert(4, 4)

		// Check
		assert.ErrorIs(t, err, crt.AllocationFailed{}, "erase fails")
		assert.ErrorIs(t, errInsert, crt.AllocationFailed{}, "insert fails")
		assert.Equal(t, 0, erased, "nothing erased")
		assert.True(t, om.Contains(2), "pair kept")
		assert.Equal(t, 4, om.Size(), "size unchanged")
	})

	t.Run("rejects a table that does not fit the budget", func(t *testing.T) {
		// Execute
		om, err := NewOpenMap[int, int](hashfunc.Integer[int]{}, WithAllocator(alloc.NewFixed(0)))

		// Check
		assert.ErrorIs(t, err, crt.AllocationFailed{}, "no room for slot array")
		assert.Nil(t, om, "nothing created")
	})

	t.Run("logs rehash through the given logger", func(t *testing.T) {
		// Prepare
		core, logs := observer.New(zap.DebugLevel)
		om, err := NewOpenMap[int, int](hashfunc.Integer[int]{}, WithCapacity(2), WithMaxLoad(50), WithLogger(zap.New(core)))
		require.NoError(t, err, "creates open map")

		// Execute
		for k := 0; k < 3; k++ {
			_, _, err = om.Insert(k, k)
			require.NoError(t, err, "insert")
		}
		_, err = om.EraseKey(1)
		require.NoError(t, err, "erase")

		// Check
		rehashes := logs.FilterMessage("table rehashed").All()
		require.Len(t, rehashes, 3, "two growths and one erase")
		assert.Equal(t, "linear_probing", rehashes[0].ContextMap()["technique"], "technique field")
		assert.Equal(t, int64(4), rehashes[0].ContextMap()["new capacity"], "first growth")
		assert.Equal(t, int64(8), rehashes[1].ContextMap()["new capacity"], "second growth")
		assert.Equal(t, int64(8), rehashes[2].ContextMap()["new capacity"], "erase keeps capacity")
	})

	t.Run("takes capacity and max load from config", func(t *testing.T) {
		// Prepare
		cfg := config.Default()
		cfg.Table.Capacity = 20
		cfg.Table.MaxLoad = 40
		cfg.Table.MemoryLimit = 4096

		// Execute
		om, err := NewOpenMap[int, int](hashfunc.Integer[int]{}, WithConfig(cfg.Table))

		// Check
		require.NoError(t, err, "creates open map")
		assert.Equal(t, 20, om.Capacity(), "capacity")
		assert.Equal(t, uint8(40), om.MaxLoad(), "max load")
		assert.Equal(t, 20, om.GetStorageParameters().InitialCapacity, "initial capacity")
	})

	t.Run("moves, clears and releases", func(t *testing.T) {
		// Prepare
		heap := alloc.NewHeap()
		om, err := NewOpenMap[int, int](hashfunc.Integer[int]{}, WithAllocator(heap))
		require.NoError(t, err, "creates open map")
		for k := 0; k < 5; k++ {
			_, _, err = om.Insert(k, k)
			require.NoError(t, err, "insert")
		}

		// Execute
		moved := om.Move()

		// Check
		assert.Equal(t, 0, om.Size(), "source size")
		assert.Equal(t, 0, om.Capacity(), "source capacity")
		assert.Equal(t, 5, moved.Size(), "destination size")
		var sum int
		for it := moved.Begin(); !it.IsEnd(); it.Next() {
			sum += *it.Value()
		}
		assert.Equal(t, 10, sum, "every value iterated")
		moved.Clear()
		assert.Equal(t, moved.End(), moved.Begin(), "cleared")
		moved.Release()
		assert.Equal(t, 0, heap.Stats().Live(), "all memory returned")
		assert.Equal(t, 0, moved.Stat(false).Capacity, "no capacity")
	})
}
