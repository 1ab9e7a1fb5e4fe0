// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/guildcraft/internal/entities"
)

// DraftSessionBuilder provides a fluent interface for building test DraftSession instances
type DraftSessionBuilder struct {
	session *entities.DraftSession
}

// NewDraftSessionBuilder creates a builder for an open first-round session
func NewDraftSessionBuilder() *DraftSessionBuilder {
	return &DraftSessionBuilder{
		session: &entities.DraftSession{
			SessionID: "draft-test-123",
			Card: entities.GatheringCard{
				ID:                "gather_test",
				Name:              "Test Grove",
				BaseCost:          1,
				PresentationCount: 2,
				MaterialPool:      []string{"herb_common", "water_spring"},
			},
			CurrentRound:      1,
			MaxRounds:         2,
			SelectedMaterials: []entities.MaterialInstance{},
			CurrentOptions: []entities.MaterialOption{
				{MaterialID: "herb_common", Quality: entities.QualityC, Quantity: 1},
				{MaterialID: "water_spring", Quality: entities.QualityB, Quantity: 1},
				{MaterialID: "herb_common", Quality: entities.QualityD, Quantity: 1},
			},
			CreatedAt: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets the session ID
func (b *DraftSessionBuilder) WithID(id string) *DraftSessionBuilder {
	b.session.SessionID = id
	return b
}

// WithRound sets the current and maximum rounds
func (b *DraftSessionBuilder) WithRound(current, maxRounds int) *DraftSessionBuilder {
	b.session.CurrentRound = current
	b.session.MaxRounds = maxRounds
	return b
}

// WithSelected appends already-selected materials
func (b *DraftSessionBuilder) WithSelected(instances ...entities.MaterialInstance) *DraftSessionBuilder {
	b.session.SelectedMaterials = append(b.session.SelectedMaterials, instances...)
	return b
}

// Complete marks the session finished and clears its options
func (b *DraftSessionBuilder) Complete() *DraftSessionBuilder {
	b.session.IsComplete = true
	b.session.CurrentOptions = []entities.MaterialOption{}
	return b
}

// Build returns the built session
func (b *DraftSessionBuilder) Build() *entities.DraftSession {
	return b.session
}
