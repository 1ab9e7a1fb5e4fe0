package phase

import (
	"context"

	"github.com/KirkDiggler/guildcraft/internal/entities"
)

// SaveVersion is written into every snapshot
const SaveVersion = "1.0.0"

// ActiveOperationGuard reports work that a phase switch would interrupt,
// such as an open draft session
type ActiveOperationGuard interface {
	HasActiveOperation(ctx context.Context) bool
	AbortCurrent(ctx context.Context) error
}

// ContinueGameInput defines the request for restoring a saved game
type ContinueGameInput struct {
	SaveData *entities.SaveData
}

// SwitchPhaseInput defines the request for jumping to a phase
type SwitchPhaseInput struct {
	Target entities.GamePhase
	// ForceAbort aborts an active operation instead of rejecting the switch
	ForceAbort bool
}

// nextPhase is the fixed in-day order. DELIVERY has no successor; ending it
// ends the day.
var nextPhase = map[entities.GamePhase]entities.GamePhase{
	entities.PhaseQuestAccept: entities.PhaseGathering,
	entities.PhaseGathering:   entities.PhaseAlchemy,
	entities.PhaseAlchemy:     entities.PhaseDelivery,
}
