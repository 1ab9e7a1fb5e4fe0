package rpgtoolkit_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/guildcraft/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/guildcraft/internal/errors"
)

func TestSeededRollerIsReproducible(t *testing.T) {
	a := rpgtoolkit.NewSeededRoller(42)
	b := rpgtoolkit.NewSeededRoller(42)

	first, err := a.RollN(20, 6)
	require.NoError(t, err)
	second, err := b.RollN(20, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, a.Uint32(), b.Uint32())
}

func TestSeededRollerStaysInRange(t *testing.T) {
	roller := rpgtoolkit.NewSeededRoller(7)

	for range 200 {
		v, err := roller.Roll(3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
	}
}

func TestSeededRollerRejectsBadDice(t *testing.T) {
	roller := rpgtoolkit.NewSeededRoller(1)

	_, err := roller.Roll(0)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = roller.RollN(-1, 6)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewRoller(t *testing.T) {
	assert.Equal(t, dice.DefaultRoller, rpgtoolkit.NewRoller(nil))

	seed := uint64(9)
	_, ok := rpgtoolkit.NewRoller(&seed).(*rpgtoolkit.SeededRoller)
	assert.True(t, ok)
}
