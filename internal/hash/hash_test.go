//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBucketIndex(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		assert.Equal(t, 8, BucketIndex(28, 10), "28 mod 10")
		assert.Equal(t, 0, BucketIndex(0, 5), "0 mod 5")
		assert.Equal(t, 0, BucketIndex(^uint64(0), 5), "max uint64 mod 5")
		assert.Equal(t, 4, BucketIndex(^uint64(0)-1, 5), "max uint64 minus one mod 5")
	})
}

func TestLinearProbe(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		capacity := 10
		home := BucketIndex(28, capacity)
		visit := make([]int, capacity)

		// Execute
		for i := 0; i < capacity; i++ {
			probe := LinearProbe(home, i, capacity)
			assert.GreaterOrEqualf(t, probe, 0, "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, capacity, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := 0; i < capacity; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in bucket #%d", i)
		}
	})

	t.Run("wraps around the end of the table", func(t *testing.T) {
		assert.Equal(t, 9, LinearProbe(8, 1, 10), "one step")
		assert.Equal(t, 0, LinearProbe(8, 2, 10), "wrapped")
		assert.Equal(t, 0, NextProbe(9, 10), "next wraps")
		assert.Equal(t, 5, NextProbe(4, 10), "next steps")
	})
}

func TestDisplacement(t *testing.T) {
	t.Run("counts steps from home bucket", func(t *testing.T) {
		assert.Equal(t, 0, Displacement(8, 8, 10), "at home")
		assert.Equal(t, 1, Displacement(8, 9, 10), "one step")
		assert.Equal(t, 2, Displacement(8, 0, 10), "wrapped")
	})
}
