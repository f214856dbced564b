package alloc

import (
	"github.com/gostonefire/tablemap/crt"
	"unsafe"
)

// Allocator - Interface for the memory collaborator that every table requests storage through.
// Tables ask for one block per node (chained table) or element (open table) and one block per backing array.
// An implementation either grants the request or returns an error, preferably of type crt.AllocationFailed,
// in which case the table is left as it was before the request.
type Allocator interface {
	// Allocate - Reserves size bytes
	Allocate(size uintptr) error
	// Deallocate - Returns size bytes previously reserved by Allocate
	Deallocate(size uintptr)
}

// Stats - Usage counters kept by the allocators in this package
//   - InUse is the number of bytes currently reserved
//   - Peak is the highest number of bytes reserved at any one time
//   - Allocations is the number of granted Allocate calls
//   - Deallocations is the number of Deallocate calls
type Stats struct {
	InUse         uintptr
	Peak          uintptr
	Allocations   int
	Deallocations int
}

// Live - Returns the number of blocks allocated but not yet deallocated
func (S Stats) Live() int {
	return S.Allocations - S.Deallocations
}

// New - Reserves room for one T through the allocator and returns a pointer to a zero valued T
func New[T any](a Allocator) (p *T, err error) {
	var zero T
	err = a.Allocate(unsafe.Sizeof(zero))
	if err != nil {
		return
	}

	p = new(T)

	return
}

// Delete - Zeroes *p and returns its room to the allocator. A nil pointer is ignored.
func Delete[T any](a Allocator, p *T) {
	if p == nil {
		return
	}

	var zero T
	*p = zero
	a.Deallocate(unsafe.Sizeof(zero))
}

// MakeSlice - Reserves room for n values of T through the allocator and returns a zeroed slice of length n
func MakeSlice[T any](a Allocator, n int) (s []T, err error) {
	var zero T
	err = a.Allocate(unsafe.Sizeof(zero) * uintptr(n))
	if err != nil {
		return
	}

	s = make([]T, n)

	return
}

// FreeSlice - Zeroes the slice and returns its room to the allocator. A nil slice is ignored.
func FreeSlice[T any](a Allocator, s []T) {
	if s == nil {
		return
	}

	var zero T
	clear(s)
	a.Deallocate(unsafe.Sizeof(zero) * uintptr(len(s)))
}

// counter - Bookkeeping shared by Heap and Fixed
type counter struct {
	stats Stats
}

func (C *counter) grant(size uintptr) {
	C.stats.InUse += size
	if C.stats.InUse > C.stats.Peak {
		C.stats.Peak = C.stats.InUse
	}
	C.stats.Allocations++
}

func (C *counter) release(size uintptr) {
	if size > C.stats.InUse {
		panic(crt.PreconditionViolation{Msg: "deallocating more memory than is allocated"})
	}
	C.stats.InUse -= size
	C.stats.Deallocations++
}

// Stats - Returns a snapshot of the usage counters
func (C *counter) Stats() Stats {
	return C.stats
}
