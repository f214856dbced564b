package model

// StorageParameters - Represents parameters describing the current shape of a table
//   - CollisionResolutionTechnique is one of crt.SeparateChaining or crt.LinearProbing
//   - Size is the number of elements stored
//   - Capacity is the number of buckets in the backing array
//   - InitialCapacity is the number of buckets the table was created with
//   - MaxLoad is the load factor in integer percent that triggers growth
type StorageParameters struct {
	CollisionResolutionTechnique int
	Size                         int
	Capacity                     int
	InitialCapacity              int
	MaxLoad                      uint8
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Elements is the total number of elements stored
//   - Capacity is the number of buckets
//   - LoadPercent is Elements relative to Capacity in integer percent
//   - OccupiedBuckets is the number of buckets holding at least one element
//   - LongestRun is the longest chain (separate chaining) or the longest distance from home bucket (linear probing)
//   - BucketDistribution is the number of elements stored in each bucket, nil unless asked for
type Stat struct {
	Elements           int     `yaml:"elements"`
	Capacity           int     `yaml:"capacity"`
	LoadPercent        int     `yaml:"loadPercent"`
	OccupiedBuckets    int     `yaml:"occupiedBuckets"`
	LongestRun         int     `yaml:"longestRun"`
	BucketDistribution []int64 `yaml:"bucketDistribution,omitempty"`
}
