package storage

import "github.com/gostonefire/tablemap/crt"

// Require - Panics with a crt.PreconditionViolation carrying msg if ok is false.
// Builds using the release tag compile the check away.
func Require(ok bool, msg string) {
	if preconditionChecks && !ok {
		panic(crt.PreconditionViolation{Msg: msg})
	}
}
