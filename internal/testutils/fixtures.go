// Package testutils holds fixtures and fakes shared by package tests
package testutils

import (
	"github.com/KirkDiggler/guildcraft/internal/entities"
)

// Fixture IDs shared across package tests
const (
	TestGatheringID = "gather_test"
	TestSlotID      = "slot-1"
)

// CreateTestGatheringCard returns a small gathering card with a two-material pool
func CreateTestGatheringCard() *entities.GatheringCard {
	return &entities.GatheringCard{
		ID:                TestGatheringID,
		Name:              "Test Grove",
		BaseCost:          1,
		PresentationCount: 2,
		MaterialPool:      []string{"herb_common", "water_spring"},
	}
}

// CreateTestGameState returns a fresh game state on day one
func CreateTestGameState() *entities.GameState {
	return &entities.GameState{
		CurrentDay:     entities.StartingDay,
		RemainingDays:  30,
		CurrentPhase:   entities.PhaseQuestAccept,
		CurrentRank:    entities.InitialRank,
		ActionPoints:   entities.MaxActionPoints,
		Gold:           100,
		PromotionGauge: 0,
	}
}
