package hashfunc

// Hasher - Interface that permits a table to be supplied with a hash function suited for its key type.
// The table turns the returned value into a bucket by taking it modulo the current capacity, so the function
// must not depend on table size.
type Hasher[K any] interface {
	// Hash - Given key it returns its hash value.
	// Keys that are equal according to the paired Equaler must return the same hash value, this is a precondition
	// that tables rely on but never verify.
	Hash(key K) uint64
}

// Equaler - Interface that permits a table to be supplied with key equality suited for its key type.
type Equaler[K any] interface {
	// Equal - Returns true if key1 and key2 are to be treated as the same key.
	Equal(key1, key2 K) bool
}

// KeyFuncs - Combines the Hasher and Equaler contracts, which is what every table needs for its key type
type KeyFuncs[K any] interface {
	Hasher[K]
	Equaler[K]
}

// Funcs - Adapts a pair of plain functions to the KeyFuncs interface
type Funcs[K any] struct {
	HashFunc  func(key K) uint64
	EqualFunc func(key1, key2 K) bool
}

// Hash - Calls HashFunc
func (F Funcs[K]) Hash(key K) uint64 {
	return F.HashFunc(key)
}

// Equal - Calls EqualFunc
func (F Funcs[K]) Equal(key1, key2 K) bool {
	return F.EqualFunc(key1, key2)
}
