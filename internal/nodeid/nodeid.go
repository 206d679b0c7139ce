// Package nodeid produces unique identifiers for blueprint nodes and edges.
// The Generator type exists so command application can be made deterministic
// in tests by injecting a sequential generator.
package nodeid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces a fresh unique identifier on each call.
type Generator func() string

// New returns a random UUID v4 string. It never fails.
func New() string {
	return uuid.NewString()
}

// Sequential returns a deterministic generator producing "<prefix>-1",
// "<prefix>-2", ... on successive calls. For tests only; the ids it
// produces are not UUID-shaped and will not pass schema validation.
func Sequential(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
