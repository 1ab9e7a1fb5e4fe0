package errors

// Reason names the game rule behind an error. Codes say how bad an error is,
// reasons say which rule produced it.
type Reason string

// Rule violations reported by the simulation core
const (
	ReasonInvalidCardType          Reason = "INVALID_CARD_TYPE"
	ReasonDataNotLoaded            Reason = "DATA_NOT_LOADED"
	ReasonSessionNotFound          Reason = "SESSION_NOT_FOUND"
	ReasonSessionComplete          Reason = "SESSION_COMPLETE"
	ReasonInvalidSelection         Reason = "INVALID_SELECTION"
	ReasonInvalidSaveData          Reason = "INVALID_SAVE_DATA"
	ReasonMaterialNotFound         Reason = "MATERIAL_NOT_FOUND"
	ReasonCardNotFound             Reason = "CARD_NOT_FOUND"
	ReasonEmptyQualityInput        Reason = "EMPTY_QUALITY_INPUT"
	ReasonCardNotInHand            Reason = "CARD_NOT_IN_HAND"
	ReasonSessionAbortRejected     Reason = "SESSION_ABORT_REJECTED"
	ReasonSamePhase                Reason = "SAME_PHASE"
	ReasonInsufficientActionPoints Reason = "INSUFFICIENT_ACTION_POINTS"
	ReasonInsufficientGold         Reason = "INSUFFICIENT_GOLD"
	ReasonGameFinished             Reason = "GAME_FINISHED"
	ReasonQuestNotFound            Reason = "QUEST_NOT_FOUND"
	ReasonQuestNotAvailable        Reason = "QUEST_NOT_AVAILABLE"
	ReasonQuestRequirementsUnmet   Reason = "QUEST_REQUIREMENTS_UNMET"
)

const metaReason = "reason"

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// WithReason records the rule that produced the error
func (e *Error) WithReason(reason Reason) *Error {
	return e.WithMeta(metaReason, reason)
}

// GetReason extracts the reason from an error, or "" if none was recorded
func GetReason(err error) Reason {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	reason, _ := meta[metaReason].(Reason)
	return reason
}

// HasReason reports whether err was produced by the given rule
func HasReason(err error, reason Reason) bool {
	return err != nil && GetReason(err) == reason
}
