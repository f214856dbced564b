package conf

// DefaultCapacity - Number of buckets a table starts with when nothing else is configured
const DefaultCapacity int = 12

// DefaultMaxLoad - Load factor in integer percent at which a table grows when nothing else is configured
const DefaultMaxLoad uint8 = 75

// MaxLoadCeiling - Highest accepted max load, an open table can never hold more elements than buckets
const MaxLoadCeiling uint8 = 100

// GrowthFactor - Factor the capacity is multiplied with on every growth rehash
const GrowthFactor int = 2
