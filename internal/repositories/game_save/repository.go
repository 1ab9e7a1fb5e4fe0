// Package gamesave persists guild save data in named slots
package gamesave

import (
	"context"

	"github.com/KirkDiggler/guildcraft/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesavemock github.com/KirkDiggler/guildcraft/internal/repositories/game_save Repository

// SaveInput contains parameters for writing a slot
type SaveInput struct {
	SlotID string
	Data   *entities.SaveData
}

// SaveOutput contains the data as written
type SaveOutput struct {
	Data *entities.SaveData
}

// LoadInput contains parameters for reading a slot
type LoadInput struct {
	SlotID string
}

// LoadOutput contains the loaded save
type LoadOutput struct {
	Data *entities.SaveData
}

// DeleteInput contains parameters for clearing a slot
type DeleteInput struct {
	SlotID string
}

// DeleteOutput is empty; a missing slot is reported as NotFound
type DeleteOutput struct{}

// ListSlotsOutput contains the occupied slot IDs in ascending order
type ListSlotsOutput struct {
	SlotIDs []string
}

// Repository defines save slot storage. A slot holds exactly one save; a
// new save overwrites the previous one.
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	ListSlots(ctx context.Context) (*ListSlotsOutput, error)
}
