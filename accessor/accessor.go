package accessor

// Accessor - Projects the key and the value out of a stored element, which lets one table implementation serve
// both map shaped elements (key and value are separate) and set shaped elements (the key is its own value).
// Implementations are expected to be zero sized structs used as type parameters, so the projection is resolved
// at compile time rather than through an interface value.
type Accessor[E, K, V any] interface {
	// Key - Returns the key of the element
	Key(element *E) K
	// Value - Returns a pointer to the value of the element, writes through it update the stored element
	Value(element *E) *V
}

// Pair - Element stored by map shaped tables
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair - Returns a Pair holding key and value
func MakePair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// MapAccessor - Accessor for Pair elements, projecting the first and second member
type MapAccessor[K, V any] struct{}

// Key - Returns the Key member of the pair
func (MapAccessor[K, V]) Key(element *Pair[K, V]) K {
	return element.Key
}

// Value - Returns a pointer to the Value member of the pair
func (MapAccessor[K, V]) Value(element *Pair[K, V]) *V {
	return &element.Value
}

// SetAccessor - Accessor for set elements, where the element is both key and value
type SetAccessor[K any] struct{}

// Key - Returns the element itself
func (SetAccessor[K]) Key(element *K) K {
	return *element
}

// Value - Returns the element itself
func (SetAccessor[K]) Value(element *K) *K {
	return element
}
