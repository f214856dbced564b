//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestIsEqual(t *testing.T) {
	t.Run("two byte slices are equal in length and values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.True(t, isEqual, "slices equal in length and values")
	})

	t.Run("two byte slices are unequal in length", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in length")
	})

	t.Run("two byte slices are unequal in values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 5, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in values")
	})
}

func TestLoadPercent(t *testing.T) {
	t.Run("calculates integer percent", func(t *testing.T) {
		assert.Equal(t, 50, LoadPercent(5, 10), "half full")
		assert.Equal(t, 33, LoadPercent(1, 3), "rounds down")
		assert.Equal(t, 0, LoadPercent(5, 0), "zero capacity")
	})
}

func TestDoubleCapacity(t *testing.T) {
	t.Run("doubles capacity", func(t *testing.T) {
		// Execute
		c, ok := DoubleCapacity(5)

		// Check
		assert.True(t, ok, "no overflow")
		assert.Equal(t, 10, c, "doubled")
	})

	t.Run("refuses to overflow", func(t *testing.T) {
		// Execute
		_, ok := DoubleCapacity(math.MaxInt/2 + 1)

		// Check
		assert.False(t, ok, "overflow detected")
	})
}
