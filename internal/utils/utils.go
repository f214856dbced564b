package utils

import (
	"github.com/gostonefire/tablemap/internal/conf"
	"math"
)

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// LoadPercent - Returns size relative to capacity as an integer percent (rounded down).
// A zero capacity gives zero.
func LoadPercent(size, capacity int) int {
	if capacity <= 0 {
		return 0
	}

	return size * 100 / capacity
}

// DoubleCapacity - Returns the given capacity multiplied by conf.GrowthFactor, ok is false if that would overflow an int
func DoubleCapacity(capacity int) (newCapacity int, ok bool) {
	if capacity > math.MaxInt/conf.GrowthFactor {
		return
	}

	newCapacity = capacity * conf.GrowthFactor
	ok = true

	return
}
