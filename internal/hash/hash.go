package hash

// BucketIndex - Returns the home bucket for a hash value in a table of the given capacity
func BucketIndex(hashValue uint64, capacity int) int {
	return int(hashValue % uint64(capacity))
}

// LinearProbe - Returns the bucket visited in the given iteration of a linear probe starting at home.
// Iterations 0 to capacity-1 visit every bucket exactly once.
func LinearProbe(home, iteration, capacity int) int {
	probe := home + iteration%capacity
	if probe >= capacity {
		probe -= capacity
	}

	return probe
}

// NextProbe - Returns the bucket following probe in a linear probe sequence
func NextProbe(probe, capacity int) int {
	probe++
	if probe >= capacity {
		probe = 0
	}

	return probe
}

// Displacement - Returns how many steps a linear probe starting at home takes to reach probe
func Displacement(home, probe, capacity int) int {
	if probe >= home {
		return probe - home
	}

	return capacity - home + probe
}
