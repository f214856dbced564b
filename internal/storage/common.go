package storage

import (
	"fmt"
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/crt"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/conf"
	"go.uber.org/zap"
)

// TableConf - Is a struct to be passed in the call to NewTable of either table implementation and contains
// configuration that affects table behaviour.
//   - Capacity is the initial number of buckets
//   - MaxLoad is the load factor in integer percent (1 to 100) at which the table doubles its capacity
//   - KeyFuncs is the hash function and key equality to use
//   - Allocator is where nodes, elements and bucket arrays are requested from, nil gives an alloc.Heap
//   - Logger receives rehash and allocation events, nil gives a no-op logger
type TableConf[K any] struct {
	Capacity  int
	MaxLoad   uint8
	KeyFuncs  hashfunc.KeyFuncs[K]
	Allocator alloc.Allocator
	Logger    *zap.Logger
}

// Validate - Checks the configuration and fills in defaults for optional collaborators.
// It returns an error of type crt.InvalidConfiguration if any value is out of range.
func (C *TableConf[K]) Validate() (err error) {
	if C.Capacity < 1 {
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", C.Capacity)}
		return
	}

	if C.MaxLoad < 1 || C.MaxLoad > conf.MaxLoadCeiling {
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("max load must be between 1 and %d percent, got %d", conf.MaxLoadCeiling, C.MaxLoad)}
		return
	}

	if C.KeyFuncs == nil {
		err = crt.InvalidConfiguration{Msg: "key functions can not be nil"}
		return
	}

	if C.Allocator == nil {
		C.Allocator = alloc.NewHeap()
	}

	if C.Logger == nil {
		C.Logger = zap.NewNop()
	}

	return
}

// NeedsGrowth - Returns true if a table holding size elements in capacity buckets has to grow before
// taking one more element, that is when size*100 >= maxLoad*capacity
func NeedsGrowth(size, capacity int, maxLoad uint8) bool {
	return size*100 >= int(maxLoad)*capacity
}
