package entities

import "time"

// Per-day and initial defaults
const (
	MaxActionPoints = 3
	StartingDay     = 1
)

// GameState is the persistent state of one playthrough. Field names follow
// the save-data contract shared with the persistence layer.
type GameState struct {
	CurrentDay     int       `json:"currentDay"`
	RemainingDays  int       `json:"remainingDays"`
	CurrentPhase   GamePhase `json:"currentPhase"`
	CurrentRank    GuildRank `json:"currentRank"`
	ActionPoints   int       `json:"actionPoints"`
	Gold           int       `json:"gold"`
	PromotionGauge int       `json:"promotionGauge"`
}

// SaveData is the blob exchanged with the persistence layer
type SaveData struct {
	Version   string     `json:"version"`
	GameState *GameState `json:"gameState"`
	SavedAt   time.Time  `json:"savedAt,omitempty"`
}

// ResultReason explains why a playthrough ended
type ResultReason string

// Terminal reasons
const (
	ReasonTimeExpired    ResultReason = "time_expired"
	ReasonMaxRankReached ResultReason = "max_rank_reached"
)

// GameResult is reported when a playthrough reaches game over or game clear
type GameResult struct {
	Reason    ResultReason `json:"reason"`
	FinalRank GuildRank    `json:"finalRank"`
	TotalDays int          `json:"totalDays"`
}

// IsClear reports whether the result is a win
func (r *GameResult) IsClear() bool {
	return r != nil && r.Reason == ReasonMaxRankReached
}
