package deck_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/guildcraft/internal/engine/deck"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
)

func letters() []string {
	return []string{"a", "b", "c", "d", "e", "f", "g", "h"}
}

func cards(ids ...string) []entities.CardInstance {
	out := make([]entities.CardInstance, len(ids))
	for i, id := range ids {
		out[i] = entities.CardInstance{InstanceID: id, CardID: "card-" + id}
	}
	return out
}

func TestShuffleSeeded_KnownOrder(t *testing.T) {
	testCases := []struct {
		name     string
		seed     uint32
		expected []string
	}{
		{name: "seed 42", seed: 42, expected: []string{"c", "h", "b", "a", "g", "f", "d", "e"}},
		{name: "seed 7", seed: 7, expected: []string{"e", "g", "b", "c", "d", "f", "h", "a"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, deck.ShuffleSeeded(letters(), tc.seed))
		})
	}

	assert.Equal(t, []int{1, 3, 4, 2, 5}, deck.ShuffleSeeded([]int{1, 2, 3, 4, 5}, 12345))
}

func TestShuffleSeeded_DeterministicPermutation(t *testing.T) {
	for seed := uint32(0); seed < 50; seed++ {
		input := letters()
		first := deck.ShuffleSeeded(input, seed)
		second := deck.ShuffleSeeded(input, seed)

		require.Equal(t, first, second, "seed %d", seed)
		require.Equal(t, letters(), input, "input must not be mutated")

		sorted := append([]string(nil), first...)
		sort.Strings(sorted)
		require.Equal(t, letters(), sorted, "seed %d must permute", seed)
	}
}

func TestShuffleSeeded_EdgeCases(t *testing.T) {
	assert.Empty(t, deck.ShuffleSeeded([]string{}, 1))
	assert.Equal(t, []string{"solo"}, deck.ShuffleSeeded([]string{"solo"}, 1))
}

func TestShuffle_IsPermutation(t *testing.T) {
	input := letters()
	out := deck.Shuffle(input)

	assert.Equal(t, letters(), input)
	assert.ElementsMatch(t, letters(), out)
}

func TestDraw(t *testing.T) {
	testCases := []struct {
		name          string
		count         int
		wantDrawn     []string
		wantRemainder []string
	}{
		{name: "draw two from top", count: 2, wantDrawn: []string{"h", "g"}, wantRemainder: []string{"a", "b", "c", "d", "e", "f"}},
		{name: "zero draws nothing", count: 0, wantDrawn: []string{}, wantRemainder: letters()},
		{name: "negative draws nothing", count: -3, wantDrawn: []string{}, wantRemainder: letters()},
		{name: "clamped to deck size", count: 20, wantDrawn: []string{"h", "g", "f", "e", "d", "c", "b", "a"}, wantRemainder: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := letters()
			drawn, remainder := deck.Draw(input, tc.count)

			assert.Equal(t, tc.wantDrawn, drawn)
			assert.Equal(t, tc.wantRemainder, remainder)
			assert.Equal(t, letters(), input)
		})
	}
}

func TestDraw_Reassembles(t *testing.T) {
	for n := -1; n <= 10; n++ {
		t.Run(fmt.Sprintf("count %d", n), func(t *testing.T) {
			input := letters()
			drawn, remainder := deck.Draw(input, n)

			expectedLen := n
			if expectedLen < 0 {
				expectedLen = 0
			}
			if expectedLen > len(input) {
				expectedLen = len(input)
			}
			require.Len(t, drawn, expectedLen)

			rebuilt := append([]string(nil), remainder...)
			for i := len(drawn) - 1; i >= 0; i-- {
				rebuilt = append(rebuilt, drawn[i])
			}
			assert.Equal(t, input, rebuilt)
		})
	}
}

type PlayCardTestSuite struct {
	suite.Suite
	state entities.DeckState
}

func TestPlayCardSuite(t *testing.T) {
	suite.Run(t, new(PlayCardTestSuite))
}

func (s *PlayCardTestSuite) SetupTest() {
	s.state = entities.DeckState{
		Hand:    cards("h1", "h2", "h3"),
		Deck:    cards("d1", "d2"),
		Discard: cards("x1"),
	}
}

func (s *PlayCardTestSuite) TestPlaysCardFromHand() {
	next, err := deck.PlayCard(s.state, "h2")
	s.Require().NoError(err)

	s.Assert().Equal(cards("h1", "h3"), next.Hand)
	s.Assert().Equal(cards("x1", "h2"), next.Discard)
	s.Assert().Equal(cards("d1", "d2"), next.Deck)

	s.Assert().Equal(cards("h1", "h2", "h3"), s.state.Hand)
	s.Assert().Equal(cards("x1"), s.state.Discard)
}

func (s *PlayCardTestSuite) TestCardNotInHand() {
	_, err := deck.PlayCard(s.state, "d1")
	s.Require().Error(err)

	s.Assert().True(errors.HasReason(err, errors.ReasonCardNotInHand))
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(cards("h1", "h2", "h3"), s.state.Hand)
	s.Assert().Equal(cards("d1", "d2"), s.state.Deck)
}

func (s *PlayCardTestSuite) TestDrawToHand() {
	next := deck.DrawToHand(s.state, 5)

	s.Assert().Equal(cards("h1", "h2", "h3", "d2", "d1"), next.Hand)
	s.Assert().Empty(next.Deck)
	s.Assert().Equal(cards("d1", "d2"), s.state.Deck)
}

func (s *PlayCardTestSuite) TestDiscardHand() {
	next := deck.DiscardHand(s.state)

	s.Assert().Empty(next.Hand)
	s.Assert().Equal(cards("x1", "h1", "h2", "h3"), next.Discard)
	s.Assert().Len(s.state.Hand, 3)
}

func (s *PlayCardTestSuite) TestRecycleDiscard() {
	state := deck.DiscardHand(s.state)
	next := deck.RecycleDiscard(state, 9)

	s.Assert().Empty(next.Discard)
	s.Require().Len(next.Deck, 6)
	// the old deck stays on top
	s.Assert().Equal(cards("d1", "d2"), next.Deck[4:])
	s.Assert().ElementsMatch(cards("x1", "h1", "h2", "h3"), next.Deck[:4])
}
