//go:build unit

package hashfunc

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestInteger(t *testing.T) {
	t.Run("hashes integers to themselves", func(t *testing.T) {
		// Prepare
		h := Integer[uint16]{}

		// Execute
		hv := h.Hash(28)

		// Check
		assert.Equal(t, uint64(28), hv, "identity hash")
		assert.Equal(t, uint64(8), hv%10, "lands in bucket 8 of 10")
	})

	t.Run("compares integers", func(t *testing.T) {
		h := Integer[int]{}
		assert.True(t, h.Equal(-3, -3), "equal keys")
		assert.False(t, h.Equal(3, -3), "unequal keys")
	})
}

func TestString(t *testing.T) {
	t.Run("creates polynomial hash", func(t *testing.T) {
		// Prepare
		h := String[string]{}

		// Execute
		hv := h.Hash("ab")

		// Check
		assert.Equal(t, uint64('a')*127+uint64('b'), hv, "h = h*127 + c")
		assert.Equal(t, uint64(0), h.Hash(""), "empty string hashes to zero")
	})

	t.Run("equal strings hash equally", func(t *testing.T) {
		h := String[string]{}
		a, b := "moshi", string([]byte("moshi"))
		assert.True(t, h.Equal(a, b), "equal keys")
		assert.Equal(t, h.Hash(a), h.Hash(b), "same hash value")
	})
}

func TestBytes(t *testing.T) {
	t.Run("creates crc32 hash", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		h := Bytes{}

		// Execute
		hv := h.Hash(a)

		// Check
		assert.Equal(t, uint64(6), hv&15, "create a valid bucket number")
	})

	t.Run("compares by length and contents", func(t *testing.T) {
		h := Bytes{}
		assert.True(t, h.Equal([]byte{1, 2}, []byte{1, 2}), "equal keys")
		assert.False(t, h.Equal([]byte{1, 2}, []byte{1, 2, 3}), "different length")
		assert.False(t, h.Equal([]byte{1, 2}, []byte{2, 1}), "different contents")
	})
}

func TestComparable(t *testing.T) {
	t.Run("equal keys hash equally within one instance", func(t *testing.T) {
		// Prepare
		type point struct{ x, y int }
		h := NewComparable[point]()

		// Check
		assert.Equal(t, h.Hash(point{1, 2}), h.Hash(point{1, 2}), "same hash value")
		assert.True(t, h.Equal(point{1, 2}, point{1, 2}), "equal keys")
		assert.False(t, h.Equal(point{1, 2}, point{2, 1}), "unequal keys")
	})
}

func TestFuncs(t *testing.T) {
	t.Run("delegates to plain functions", func(t *testing.T) {
		// Prepare
		var kf KeyFuncs[int] = Funcs[int]{
			HashFunc:  func(key int) uint64 { return uint64(key % 3) },
			EqualFunc: func(key1, key2 int) bool { return key1 == key2 },
		}

		// Check
		assert.Equal(t, uint64(1), kf.Hash(7), "calls HashFunc")
		assert.True(t, kf.Equal(7, 7), "calls EqualFunc")
	})
}
