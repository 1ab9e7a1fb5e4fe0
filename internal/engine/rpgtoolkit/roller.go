// Package rpgtoolkit adapts guild types to the rpg-toolkit interfaces used by
// the engine: dice rollers and event source entities
package rpgtoolkit

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/guildcraft/internal/errors"
)

// SeededRoller is a dice.Roller whose rolls depend only on its seed. The
// simulator uses it so a seed replays a whole playthrough.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller from a 64-bit seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Roll returns a value in 1..size
func (r *SeededRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the same size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}

	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Uint32 draws a value for seeding downstream shuffles
func (r *SeededRoller) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Uint32()
}

// NewRoller returns a SeededRoller when seed is set and the toolkit's
// default roller otherwise
func NewRoller(seed *uint64) dice.Roller {
	if seed == nil {
		return dice.DefaultRoller
	}
	return NewSeededRoller(*seed)
}
