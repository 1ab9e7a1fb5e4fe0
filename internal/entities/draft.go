package entities

import "time"

// DraftSession is one multi-round gathering draft. CurrentOptions holds
// exactly three options while the session is open and is empty once
// IsComplete is set.
type DraftSession struct {
	SessionID         string             `json:"session_id"`
	Card              GatheringCard      `json:"card"`
	CurrentRound      int                `json:"current_round"`
	MaxRounds         int                `json:"max_rounds"`
	SelectedMaterials []MaterialInstance `json:"selected_materials"`
	CurrentOptions    []MaterialOption   `json:"current_options"`
	IsComplete        bool               `json:"is_complete"`
	CreatedAt         time.Time          `json:"created_at"`
}

// GatheringCost is the price of a finished draft
type GatheringCost struct {
	ActionPointCost int `json:"action_point_cost"`
	ExtraDays       int `json:"extra_days"`
}

// GatheringResult is returned when a draft is finalized
type GatheringResult struct {
	Materials []MaterialInstance `json:"materials"`
	Cost      GatheringCost      `json:"cost"`
}
