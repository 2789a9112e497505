// Package idgen names saves and combat encounters
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new identifier on every call
type Generator interface {
	Generate() string
}

// Sequential yields prefix_1, prefix_2, ... so seeded runs name things
// the same way every time
type Sequential struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a counter starting at 1
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (g *Sequential) Generate() string {
	n := strconv.FormatUint(g.counter.Add(1), 10)
	if g.prefix == "" {
		return n
	}
	return g.prefix + "_" + n
}

// UUID yields prefix_<random uuid>, used for save ids that must not collide
// across processes sharing one backend
type UUID struct {
	prefix string
}

// NewUUID creates a generator; an empty prefix yields bare uuids
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

func (g *UUID) Generate() string {
	id := uuid.NewString()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "_" + id
}
