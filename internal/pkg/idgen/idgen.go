// Package idgen generates encounter and roll identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// Sequential yields prefix_1, prefix_2, ... and is meant for tests and
// seeded local play where stable IDs matter
type Sequential struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential creates a sequential generator; an empty prefix yields bare numbers
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns the next ID
func (g *Sequential) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

// UUID yields prefix_<uuid v7>. Version 7 IDs sort by creation time, so a
// SCAN over encounter keys lists them roughly oldest first.
type UUID struct {
	prefix string
}

// NewUUID creates a UUID generator with an optional prefix
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

// Generate returns a new ID
func (g *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the entropy source does
		id = uuid.New()
	}
	return join(g.prefix, id.String())
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
