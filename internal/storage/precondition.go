//go:build !release

package storage

const preconditionChecks = true
