package crt

import (
	"fmt"
	"strings"
)

// SeparateChaining - Collision Resolution Technique where every bucket heads a singly linked chain of nodes
const SeparateChaining = 0

// LinearProbing - Collision Resolution Technique where every bucket holds at most one element and collisions
// are resolved by stepping to the next bucket (modulo table capacity)
const LinearProbing = 1

var techniqueNames = map[int]string{
	SeparateChaining: "separate_chaining",
	LinearProbing:    "linear_probing",
}

// Name - Returns the configuration name of a collision resolution technique, or an empty string if unknown
func Name(technique int) string {
	return techniqueNames[technique]
}

// Parse - Returns the collision resolution technique given its configuration name.
// Names are case-insensitive and dashes are accepted in place of underscores.
//   - name is one of "separate_chaining" or "linear_probing"
//
// It returns:
//   - technique is one of SeparateChaining or LinearProbing
//   - err is of type InvalidConfiguration if the name is not recognized
func Parse(name string) (technique int, err error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for t, n := range techniqueNames {
		if n == normalized {
			technique = t
			return
		}
	}

	err = InvalidConfiguration{Msg: fmt.Sprintf("unknown collision resolution technique %q", name)}
	return
}
