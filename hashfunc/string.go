package hashfunc

// String - Polynomial string hash, h = h*127 + c over every byte of the key
type String[K ~string] struct{}

// Hash - Returns the polynomial hash of the key
func (String[K]) Hash(key K) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*127 + uint64(key[i])
	}

	return h
}

// Equal - Compares keys with ==
func (String[K]) Equal(key1, key2 K) bool {
	return key1 == key2
}
