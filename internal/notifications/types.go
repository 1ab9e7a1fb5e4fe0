package notifications

import (
	"github.com/KirkDiggler/guildcraft/internal/entities"
)

// EventType names a notification emitted by the simulation core
type EventType string

// Notifications emitted by the core
const (
	EventPhaseChanged     EventType = "guild.phase_changed"
	EventDayStarted       EventType = "guild.day_started"
	EventDayEnded         EventType = "guild.day_ended"
	EventGameOver         EventType = "guild.game_over"
	EventGameCleared      EventType = "guild.game_cleared"
	EventRankUp           EventType = "guild.rank_up"
	EventGatheringStarted EventType = "guild.gathering_started"
	EventMaterialSelected EventType = "guild.material_selected"
	EventGatheringEnded   EventType = "guild.gathering_ended"
)

// AllEventTypes lists every notification the core emits
var AllEventTypes = []EventType{
	EventPhaseChanged,
	EventDayStarted,
	EventDayEnded,
	EventGameOver,
	EventGameCleared,
	EventRankUp,
	EventGatheringStarted,
	EventMaterialSelected,
	EventGatheringEnded,
}

// PhaseChanged is emitted once per phase transition
type PhaseChanged struct {
	PreviousPhase entities.GamePhase
	NewPhase      entities.GamePhase
}

// DayStarted is emitted when a new day begins
type DayStarted struct {
	Day           int
	RemainingDays int
}

// DayEnded is emitted after deadlines are processed and counters advanced
type DayEnded struct {
	FailedQuests  []string
	RemainingDays int
	CurrentDay    int
}

// RankUp is emitted when the promotion gauge promotes the guild rank
type RankUp struct {
	PreviousRank entities.GuildRank
	NewRank      entities.GuildRank
}

// GatheringStarted carries a snapshot of the new draft session
type GatheringStarted struct {
	Session entities.DraftSession
}

// MaterialSelected carries the instance chosen in a draft round
type MaterialSelected struct {
	SessionID string
	Material  entities.MaterialInstance
}

// GatheringEnded carries the finalized draft
type GatheringEnded struct {
	SessionID string
	Materials []entities.MaterialInstance
	Cost      entities.GatheringCost
}

// Notification is what subscribers receive
type Notification struct {
	Type    EventType
	Payload any
}
