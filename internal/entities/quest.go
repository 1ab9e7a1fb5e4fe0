package entities

// QuestStatus tracks a quest through the board
type QuestStatus string

// Quest statuses
const (
	QuestAvailable QuestStatus = "AVAILABLE"
	QuestAccepted  QuestStatus = "ACCEPTED"
	QuestCompleted QuestStatus = "COMPLETED"
	QuestFailed    QuestStatus = "FAILED"
)

// Quest is a delivery request posted on the guild board. Delivering
// RequiredCount materials whose average quality reaches MinQuality before
// the end of DeadlineDay completes it.
type Quest struct {
	ID              string      `json:"id"`
	Rank            GuildRank   `json:"rank"`
	MaterialID      string      `json:"material_id"`
	RequiredCount   int         `json:"required_count"`
	MinQuality      Quality     `json:"min_quality"`
	RewardGold      int         `json:"reward_gold"`
	PromotionPoints int         `json:"promotion_points"`
	PostedDay       int         `json:"posted_day"`
	DeadlineDay     int         `json:"deadline_day"`
	Status          QuestStatus `json:"status"`
}
