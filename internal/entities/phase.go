package entities

// GamePhase is one of the four daily stages
type GamePhase string

// Daily phases in play order
const (
	PhaseQuestAccept GamePhase = "QUEST_ACCEPT"
	PhaseGathering   GamePhase = "GATHERING"
	PhaseAlchemy     GamePhase = "ALCHEMY"
	PhaseDelivery    GamePhase = "DELIVERY"
)

// AllPhases lists the phases in play order
var AllPhases = []GamePhase{
	PhaseQuestAccept,
	PhaseGathering,
	PhaseAlchemy,
	PhaseDelivery,
}

func (p GamePhase) String() string {
	return string(p)
}

// IsValid reports whether p is a known phase
func (p GamePhase) IsValid() bool {
	switch p {
	case PhaseQuestAccept, PhaseGathering, PhaseAlchemy, PhaseDelivery:
		return true
	}
	return false
}
