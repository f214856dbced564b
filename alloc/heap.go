package alloc

// Heap - Unbounded allocator backed by the Go heap. It never refuses a request but keeps usage counters,
// which makes it useful for checking that every node is returned exactly once.
type Heap struct {
	counter
}

// NewHeap - Returns a pointer to a new Heap allocator
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate - Always grants the request
func (H *Heap) Allocate(size uintptr) error {
	H.grant(size)
	return nil
}

// Deallocate - Returns size bytes
func (H *Heap) Deallocate(size uintptr) {
	H.release(size)
}
