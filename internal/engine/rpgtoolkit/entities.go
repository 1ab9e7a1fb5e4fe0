package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeGame is the rpg-toolkit entity type of a playthrough
const EntityTypeGame = "game"

// GameEntity identifies one playthrough as an event source
type GameEntity struct {
	ID string
}

var _ core.Entity = (*GameEntity)(nil)

// GetID returns the playthrough ID
func (g *GameEntity) GetID() string { return g.ID }

// GetType returns the entity type for rpg-toolkit
func (g *GameEntity) GetType() string { return EntityTypeGame }
