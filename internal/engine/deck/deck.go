// Package deck implements the pure card-pile operations: shuffling, drawing
// and playing. No function mutates its arguments, so independent inputs may
// be processed concurrently.
package deck

import (
	"math/rand/v2"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
)

// Shuffle returns a shuffled copy of deck using a non-deterministic source
func Shuffle[T any](deck []T) []T {
	out := clone(deck)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// ShuffleSeeded returns a Fisher-Yates shuffled copy of deck. The same deck
// and seed always produce the same order.
func ShuffleSeeded[T any](deck []T, seed uint32) []T {
	out := clone(deck)
	rng := newMulberry32(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Draw takes up to count items from the top (tail) of deck. Drawn items are
// returned top first. A non-positive count draws nothing.
func Draw[T any](deck []T, count int) (drawn []T, remainder []T) {
	if count < 0 {
		count = 0
	}
	if count > len(deck) {
		count = len(deck)
	}

	split := len(deck) - count
	drawn = make([]T, 0, count)
	for i := len(deck) - 1; i >= split; i-- {
		drawn = append(drawn, deck[i])
	}
	return drawn, clone(deck[:split])
}

// PlayCard moves the card with instanceID from the hand to the top of the
// discard pile. A card that is not in hand yields an error with reason
// CARD_NOT_IN_HAND and the zero DeckState.
func PlayCard(state entities.DeckState, instanceID string) (entities.DeckState, error) {
	idx := -1
	for i, card := range state.Hand {
		if card.InstanceID == instanceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.DeckState{}, errors.NotFoundf("card %s is not in hand", instanceID).
			WithReason(errors.ReasonCardNotInHand).
			WithMeta("instance_id", instanceID)
	}

	hand := make([]entities.CardInstance, 0, len(state.Hand)-1)
	hand = append(hand, state.Hand[:idx]...)
	hand = append(hand, state.Hand[idx+1:]...)

	discard := make([]entities.CardInstance, 0, len(state.Discard)+1)
	discard = append(discard, state.Discard...)
	discard = append(discard, state.Hand[idx])

	return entities.DeckState{
		Hand:    hand,
		Deck:    clone(state.Deck),
		Discard: discard,
	}, nil
}

// DrawToHand draws up to count cards from the deck into the hand
func DrawToHand(state entities.DeckState, count int) entities.DeckState {
	drawn, remainder := Draw(state.Deck, count)

	hand := make([]entities.CardInstance, 0, len(state.Hand)+len(drawn))
	hand = append(hand, state.Hand...)
	hand = append(hand, drawn...)

	return entities.DeckState{
		Hand:    hand,
		Deck:    remainder,
		Discard: clone(state.Discard),
	}
}

// DiscardHand moves the whole hand onto the discard pile, keeping hand order
func DiscardHand(state entities.DeckState) entities.DeckState {
	discard := make([]entities.CardInstance, 0, len(state.Discard)+len(state.Hand))
	discard = append(discard, state.Discard...)
	discard = append(discard, state.Hand...)

	return entities.DeckState{
		Hand:    []entities.CardInstance{},
		Deck:    clone(state.Deck),
		Discard: discard,
	}
}

// RecycleDiscard shuffles the discard pile and slides it under the deck
func RecycleDiscard(state entities.DeckState, seed uint32) entities.DeckState {
	recycled := ShuffleSeeded(state.Discard, seed)

	deck := make([]entities.CardInstance, 0, len(recycled)+len(state.Deck))
	deck = append(deck, recycled...)
	deck = append(deck, state.Deck...)

	return entities.DeckState{
		Hand:    clone(state.Hand),
		Deck:    deck,
		Discard: []entities.CardInstance{},
	}
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
