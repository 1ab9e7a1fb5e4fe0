// Package idgen mints identifiers for draft sessions, card copies, material
// instances and quests. Seeded simulations use Sequential so that two runs
// with the same seed produce the same IDs.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator mints one identifier per call
type Generator interface {
	Generate() string
}

// UUIDGenerator yields "<prefix>_<uuid>", or a bare UUID without a prefix.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator; prefix may be empty
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a fresh random ID
func (g *UUIDGenerator) Generate() string {
	return join(g.prefix, uuid.NewString())
}

// SequentialGenerator yields "<prefix>_1", "<prefix>_2", ... and is safe for
// concurrent use.
type SequentialGenerator struct {
	prefix string
	last   atomic.Uint64
}

// NewSequential creates a generator that starts at 1
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID in sequence
func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.last.Add(1), 10))
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
