//go:build unit

package tablemap

import (
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestOpenSet(t *testing.T) {
	t.Run("stores byte slice keys", func(t *testing.T) {
		// Prepare
		set, err := NewOpenSet[[]byte](hashfunc.Bytes{}, WithCapacity(4))
		require.NoError(t, err, "creates open set")

		// Execute
		for _, k := range []string{"alpha", "beta", "gamma", "alpha", "delta", "beta"} {
			_, _, err = set.Insert([]byte(k))
			require.NoError(t, err, "insert")
		}

		// Check
		assert.Equal(t, 4, set.Size(), "distinct keys")
		assert.True(t, set.Contains([]byte("gamma")), "contains gamma")
		assert.False(t, set.Contains([]byte("epsilon")), "does not contain epsilon")
	})

	t.Run("erases every key one by one", func(t *testing.T) {
		// Prepare
		set, err := NewOpenSet[int](hashfunc.Integer[int]{}, WithCapacity(16), WithMaxLoad(100))
		require.NoError(t, err, "creates open set")
		for k := 0; k < 16; k++ {
			_, _, err = set.Insert(k * 16)
			require.NoError(t, err, "insert")
		}
		require.Equal(t, 16, set.Capacity(), "full without growth")
		sp := set.GetStorageParameters()
		assert.Equal(t, crt.LinearProbing, sp.CollisionResolutionTechnique, "linear probing")
		assert.Equal(t, 16, sp.Size, "size reported")
		assert.Equal(t, uint8(100), sp.MaxLoad, "max load reported")

		// Execute and Check
		for !set.Empty() {
			it := set.Begin()
			key := it.Key()
			require.NoError(t, set.Erase(it), "erase")
			require.False(t, set.Contains(key), "erased key gone")
		}
		erased, err := set.EraseKey(0)
		assert.NoError(t, err, "erase missing")
		assert.Equal(t, 0, erased, "nothing erased")

		moved := set.Move()
		assert.Equal(t, 16, moved.Capacity(), "destination keeps capacity")
		moved.Clear()
		moved.Release()
		assert.Equal(t, 0, moved.Size(), "released")
		assert.Equal(t, 0, moved.Stat(true).Elements, "no elements")
	})
}
