package quest

import "github.com/KirkDiggler/guildcraft/internal/entities"

// GenerateDailyQuestsInput defines the request for posting a day's quests
type GenerateDailyQuestsInput struct {
	Rank entities.GuildRank
	Day  int
}

// GenerateDailyQuestsOutput defines the response for posting a day's quests
type GenerateDailyQuestsOutput struct {
	Quests []entities.Quest
}

// ProcessDeadlinesInput defines the request for expiring quests
type ProcessDeadlinesInput struct {
	// Day is the day that is ending
	Day int
}

// ProcessDeadlinesOutput defines the response for expiring quests
type ProcessDeadlinesOutput struct {
	FailedQuestIDs []string
}

// AcceptQuestInput defines the request for accepting a quest
type AcceptQuestInput struct {
	QuestID string
}

// AcceptQuestOutput defines the response for accepting a quest
type AcceptQuestOutput struct {
	Quest entities.Quest
}

// DeliverQuestInput defines the request for delivering a quest
type DeliverQuestInput struct {
	QuestID   string
	Materials []entities.MaterialInstance
}

// DeliverQuestOutput defines the response for delivering a quest
type DeliverQuestOutput struct {
	Quest           entities.Quest
	RewardGold      int
	PromotionPoints int
}

// ListQuestsOutput defines the response for listing the board
type ListQuestsOutput struct {
	Quests []entities.Quest
}
