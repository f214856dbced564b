package hashfunc

import (
	"github.com/gostonefire/tablemap/internal/utils"
	"hash/crc32"
)

// Bytes - Hashes byte slice keys using crc32.ChecksumIEEE and compares them by length and contents
type Bytes struct{}

// Hash - Returns the IEEE crc32 checksum of the key
func (Bytes) Hash(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// Equal - Returns true if key1 and key2 are equal both in size and contents
func (Bytes) Equal(key1, key2 []byte) bool {
	return utils.IsEqual(key1, key2)
}
