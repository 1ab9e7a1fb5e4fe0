package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns queued values in order and
// then keeps repeating the last one
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller queues the values to return
func NewScriptedRoller(values ...int) *ScriptedRoller {
	if len(values) == 0 {
		values = []int{1}
	}
	return &ScriptedRoller{values: values}
}

// Roll returns the next queued value
func (s *ScriptedRoller) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sizes = append(s.sizes, size)
	v := s.values[0]
	if len(s.values) > 1 {
		s.values = s.values[1:]
	}
	return v, nil
}

// RollN returns count queued values
func (s *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = s.Roll(size)
	}
	return out, nil
}

// Sizes returns the die sizes requested so far
func (s *ScriptedRoller) Sizes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.sizes...)
}
