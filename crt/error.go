package crt

// AllocationFailed - Custom error to inform that the allocator refused a request during insert, rehash or erase
type AllocationFailed struct {
	Msg string
}

// Error - Used to notify that an allocation request could not be served
func (A AllocationFailed) Error() string {
	if A.Msg == "" {
		return "allocation failed"
	}
	return A.Msg
}

// Is - Makes errors.Is match any AllocationFailed regardless of message
func (A AllocationFailed) Is(target error) bool {
	_, ok := target.(AllocationFailed)
	return ok
}

// InvalidConfiguration - Custom error to inform that table parameters are not acceptable
type InvalidConfiguration struct {
	Msg string
}

// Error - Used to notify that a configuration value is out of range
func (I InvalidConfiguration) Error() string {
	if I.Msg == "" {
		return "invalid configuration"
	}
	return I.Msg
}

// Is - Makes errors.Is match any InvalidConfiguration regardless of message
func (I InvalidConfiguration) Is(target error) bool {
	_, ok := target.(InvalidConfiguration)
	return ok
}

// PreconditionViolation - Panic value used when a caller breaks a table precondition, such as dereferencing the
// end iterator or erasing through an iterator that belongs to another table
type PreconditionViolation struct {
	Msg string
}

// Error - Used to describe the broken precondition
func (P PreconditionViolation) Error() string {
	if P.Msg == "" {
		return "precondition violated"
	}
	return P.Msg
}
