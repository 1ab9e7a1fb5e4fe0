package gathering

import "github.com/KirkDiggler/guildcraft/internal/entities"

// OptionsPerRound is the number of materials offered each draft round
const OptionsPerRound = 3

// StartDraftGatheringInput defines the request for opening a draft
type StartDraftGatheringInput struct {
	Card entities.Card
	// EnhancementCards may extend the number of rounds
	EnhancementCards []entities.Card
}

// StartDraftGatheringOutput defines the response for opening a draft
type StartDraftGatheringOutput struct {
	Session *entities.DraftSession
}

// SelectMaterialInput defines the request for picking an option
type SelectMaterialInput struct {
	SessionID string
	Index     int
}

// SelectMaterialOutput defines the response for picking an option
type SelectMaterialOutput struct {
	Session  *entities.DraftSession
	Material *entities.MaterialInstance
}

// SkipSelectionInput defines the request for passing on a round
type SkipSelectionInput struct {
	SessionID string
}

// SkipSelectionOutput defines the response for passing on a round
type SkipSelectionOutput struct {
	Session *entities.DraftSession
}

// EndGatheringInput defines the request for finalizing a draft
type EndGatheringInput struct {
	SessionID string
}

// EndGatheringOutput defines the response for finalizing a draft
type EndGatheringOutput struct {
	Result *entities.GatheringResult
}
