package alloc

import (
	"fmt"
	"github.com/gostonefire/tablemap/crt"
)

// Fixed - Allocator with a fixed byte budget, standing in for a statically sized memory pool on a
// memory constrained target. Requests that would take usage above the budget fail with crt.AllocationFailed.
type Fixed struct {
	counter
	limit uintptr
}

// NewFixed - Returns a pointer to a new Fixed allocator
//   - limit is the total number of bytes that may be in use at any one time
func NewFixed(limit uintptr) *Fixed {
	return &Fixed{limit: limit}
}

// Allocate - Grants the request if it fits within the remaining budget
func (F *Fixed) Allocate(size uintptr) error {
	if size > F.limit-F.stats.InUse {
		return crt.AllocationFailed{
			Msg: fmt.Sprintf("allocation of %d bytes exceeds budget, %d of %d bytes in use", size, F.stats.InUse, F.limit),
		}
	}

	F.grant(size)

	return nil
}

// Deallocate - Returns size bytes to the budget
func (F *Fixed) Deallocate(size uintptr) {
	F.release(size)
}

// Limit - Returns the total budget in bytes
func (F *Fixed) Limit() uintptr {
	return F.limit
}

// Available - Returns the number of bytes left in the budget
func (F *Fixed) Available() uintptr {
	return F.limit - F.stats.InUse
}
