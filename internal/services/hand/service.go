// Package hand holds the player's deck piles and drives DeckCore on their
// behalf: drawing a hand, playing cards and the full refresh used by rest.
package hand

//go:generate mockgen -destination=mock/mock_service.go -package=handmock github.com/KirkDiggler/guildcraft/internal/services/hand Service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/engine/deck"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/pkg/idgen"
)

// DefaultHandSize is used when Config.HandSize is zero
const DefaultHandSize = 5

// Service defines the hand operations
type Service interface {
	// DrawHand tops the hand up to the configured size
	DrawHand(ctx context.Context) (*DrawHandOutput, error)

	// PlayCard moves a card from hand to discard and resolves its master record
	PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error)

	// RefreshHand discards the entire hand and draws a fresh one
	RefreshHand(ctx context.Context) (*RefreshHandOutput, error)

	// GetDeckState returns a copy of the three piles
	GetDeckState(ctx context.Context) (*GetDeckStateOutput, error)
}

// DrawHandOutput defines the response for drawing
type DrawHandOutput struct {
	Drawn []entities.CardInstance
	State entities.DeckState
}

// PlayCardInput defines the request for playing a card
type PlayCardInput struct {
	InstanceID string
}

// PlayCardOutput defines the response for playing a card
type PlayCardOutput struct {
	Card  entities.Card
	State entities.DeckState
}

// RefreshHandOutput defines the response for a hand refresh
type RefreshHandOutput struct {
	State entities.DeckState
}

// GetDeckStateOutput defines the response for reading the piles
type GetDeckStateOutput struct {
	State entities.DeckState
}

// Config holds the dependencies for the hand service
type Config struct {
	MasterData  masterdata.Client
	IDGenerator idgen.Generator
	// CardIDs is the starting deck as master card IDs
	CardIDs  []string
	HandSize int
	// Seed makes every shuffle reproducible when set
	Seed *uint32
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MasterData == nil {
		vb.RequiredField("MasterData")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if len(c.CardIDs) == 0 {
		vb.RequiredField("CardIDs")
	}
	if c.HandSize < 0 {
		vb.Field("HandSize", "must not be negative")
	}

	return vb.Build()
}

type service struct {
	masterData masterdata.Client
	handSize   int
	seed       *uint32
	shuffles   uint32

	mu    sync.Mutex
	state entities.DeckState
}

// NewService builds the starting deck from master data and shuffles it
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	instances := make([]entities.CardInstance, 0, len(cfg.CardIDs))
	for _, cardID := range cfg.CardIDs {
		if _, err := cfg.MasterData.GetCard(cardID); err != nil {
			return nil, errors.Wrapf(err, "starting deck references unknown card %s", cardID)
		}
		instances = append(instances, entities.CardInstance{
			InstanceID: cfg.IDGenerator.Generate(),
			CardID:     cardID,
		})
	}

	handSize := cfg.HandSize
	if handSize == 0 {
		handSize = DefaultHandSize
	}

	s := &service{
		masterData: cfg.MasterData,
		handSize:   handSize,
		seed:       cfg.Seed,
	}
	s.state = entities.DeckState{
		Hand:    []entities.CardInstance{},
		Deck:    deck.ShuffleSeeded(instances, s.nextSeed()),
		Discard: []entities.CardInstance{},
	}

	return s, nil
}

// DrawHand tops the hand up to the hand size, recycling the discard pile
// when the deck runs short
func (s *service) DrawHand(_ context.Context) (*DrawHandOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.state.Hand)
	s.state = s.fill(s.state)

	return &DrawHandOutput{
		Drawn: append([]entities.CardInstance(nil), s.state.Hand[before:]...),
		State: copyState(s.state),
	}, nil
}

// PlayCard plays a card from the hand. A card that is not in hand is
// reported with the CARD_NOT_IN_HAND reason and leaves the piles untouched.
func (s *service) PlayCard(_ context.Context, input *PlayCardInput) (*PlayCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var cardID string
	for _, c := range s.state.Hand {
		if c.InstanceID == input.InstanceID {
			cardID = c.CardID
			break
		}
	}

	next, err := deck.PlayCard(s.state, input.InstanceID)
	if err != nil {
		return nil, err
	}

	card, err := s.masterData.GetCard(cardID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve played card %s", cardID)
	}
	s.state = next

	return &PlayCardOutput{
		Card:  card,
		State: copyState(s.state),
	}, nil
}

// RefreshHand discards the whole hand and refills it
func (s *service) RefreshHand(_ context.Context) (*RefreshHandOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discarded := len(s.state.Hand)
	s.state = s.fill(deck.DiscardHand(s.state))

	slog.Info("Hand refreshed",
		"discarded", discarded,
		"hand_size", len(s.state.Hand),
		"deck_size", len(s.state.Deck))

	return &RefreshHandOutput{State: copyState(s.state)}, nil
}

// GetDeckState returns a copy of the piles
func (s *service) GetDeckState(_ context.Context) (*GetDeckStateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetDeckStateOutput{State: copyState(s.state)}, nil
}

func (s *service) fill(state entities.DeckState) entities.DeckState {
	need := s.handSize - len(state.Hand)
	if need <= 0 {
		return state
	}
	if len(state.Deck) < need && len(state.Discard) > 0 {
		state = deck.RecycleDiscard(state, s.nextSeed())
	}
	return deck.DrawToHand(state, need)
}

// nextSeed steps through the configured seed so a seeded service replays
// the same game
func (s *service) nextSeed() uint32 {
	if s.seed == nil {
		return rand.Uint32()
	}
	seed := *s.seed + s.shuffles
	s.shuffles++
	return seed
}

func copyState(state entities.DeckState) entities.DeckState {
	return entities.DeckState{
		Hand:    append([]entities.CardInstance{}, state.Hand...),
		Deck:    append([]entities.CardInstance{}, state.Deck...),
		Discard: append([]entities.CardInstance{}, state.Discard...),
	}
}
