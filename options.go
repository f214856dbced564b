package tablemap

import (
	"github.com/gostonefire/tablemap/alloc"
	"github.com/gostonefire/tablemap/config"
	"github.com/gostonefire/tablemap/hashfunc"
	"github.com/gostonefire/tablemap/internal/conf"
	"github.com/gostonefire/tablemap/internal/model"
	"github.com/gostonefire/tablemap/internal/storage"
	"go.uber.org/zap"
)

// Stat - Statistics on the overall usage and distribution over buckets
type Stat = model.Stat

// StorageParameters - Parameters describing the current shape of a table
type StorageParameters = model.StorageParameters

// Option - Configures a table when passed to any of the New functions
type Option func(o *options)

type options struct {
	capacity  int
	maxLoad   uint8
	allocator alloc.Allocator
	logger    *zap.Logger
}

// WithCapacity - Sets the initial number of buckets, default is 12
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithMaxLoad - Sets the load factor in integer percent (1 to 100) at which the table doubles its capacity,
// default is 75
func WithMaxLoad(maxLoad uint8) Option {
	return func(o *options) {
		o.maxLoad = maxLoad
	}
}

// WithAllocator - Sets the allocator nodes, elements and bucket arrays are requested from, default is an alloc.Heap
func WithAllocator(allocator alloc.Allocator) Option {
	return func(o *options) {
		o.allocator = allocator
	}
}

// WithLogger - Sets the logger receiving rehash and allocation events, default is a no-op logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfig - Sets capacity, max load and allocator from a loaded table configuration.
// The technique of the configuration is not used, it is given by the kind of table created.
func WithConfig(table config.Table) Option {
	return func(o *options) {
		o.capacity = table.Capacity
		o.maxLoad = table.MaxLoad
		o.allocator = table.Allocator()
	}
}

// tableConf - Applies opts on top of the defaults and returns the resulting storage.TableConf
func tableConf[K any](keyFuncs hashfunc.KeyFuncs[K], opts []Option) storage.TableConf[K] {
	o := options{
		capacity: conf.DefaultCapacity,
		maxLoad:  conf.DefaultMaxLoad,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return storage.TableConf[K]{
		Capacity:  o.capacity,
		MaxLoad:   o.maxLoad,
		KeyFuncs:  keyFuncs,
		Allocator: o.allocator,
		Logger:    o.logger,
	}
}
