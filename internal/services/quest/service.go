// Package quest runs the guild quest board: daily postings keyed by rank,
// acceptance, delivery and deadline expiry.
package quest

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/KirkDiggler/guildcraft/internal/services/quest Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/engine/quality"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/pkg/idgen"
)

// DefaultQuestsPerDay is used when Config.QuestsPerDay is zero
const DefaultQuestsPerDay = 3

// Service defines the quest board operations
type Service interface {
	// GenerateDailyQuests replaces the unaccepted postings with a fresh set for the rank
	GenerateDailyQuests(ctx context.Context, input *GenerateDailyQuestsInput) (*GenerateDailyQuestsOutput, error)

	// ProcessDeadlines fails accepted quests whose deadline is the ending day or earlier
	ProcessDeadlines(ctx context.Context, input *ProcessDeadlinesInput) (*ProcessDeadlinesOutput, error)

	AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error)
	DeliverQuest(ctx context.Context, input *DeliverQuestInput) (*DeliverQuestOutput, error)
	ListQuests(ctx context.Context) (*ListQuestsOutput, error)
}

// Config holds the dependencies for the quest board
type Config struct {
	MasterData  masterdata.Client
	DiceRoller  dice.Roller
	IDGenerator idgen.Generator
	// MaterialIDs are the materials quests may ask for
	MaterialIDs  []string
	QuestsPerDay int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MasterData == nil {
		vb.RequiredField("MasterData")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if len(c.MaterialIDs) == 0 {
		vb.RequiredField("MaterialIDs")
	}
	if c.QuestsPerDay < 0 {
		vb.Field("QuestsPerDay", "must not be negative")
	}

	return vb.Build()
}

type service struct {
	masterData   masterdata.Client
	roller       dice.Roller
	idGen        idgen.Generator
	materialIDs  []string
	questsPerDay int

	mu     sync.Mutex
	quests []*entities.Quest
}

// NewService creates an empty quest board
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	perDay := cfg.QuestsPerDay
	if perDay == 0 {
		perDay = DefaultQuestsPerDay
	}

	return &service{
		masterData:   cfg.MasterData,
		roller:       cfg.DiceRoller,
		idGen:        cfg.IDGenerator,
		materialIDs:  append([]string(nil), cfg.MaterialIDs...),
		questsPerDay: perDay,
	}, nil
}

// GenerateDailyQuests clears the board of everything but accepted quests
// (yesterday's unaccepted postings and settled quests go) and posts new
// ones scaled to the rank
func (s *service) GenerateDailyQuests(_ context.Context, input *GenerateDailyQuestsInput) (*GenerateDailyQuestsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Rank.IsValid() {
		return nil, errors.InvalidArgumentf("unknown guild rank %q", input.Rank)
	}

	posted := make([]*entities.Quest, 0, s.questsPerDay)
	for i := 0; i < s.questsPerDay; i++ {
		q, err := s.newQuest(input.Rank, input.Day)
		if err != nil {
			return nil, err
		}
		posted = append(posted, q)
	}

	s.mu.Lock()
	kept := s.quests[:0]
	for _, q := range s.quests {
		if q.Status == entities.QuestAccepted {
			kept = append(kept, q)
		}
	}
	s.quests = append(kept, posted...)
	s.mu.Unlock()

	slog.Info("Daily quests posted",
		"day", input.Day,
		"rank", input.Rank,
		"count", len(posted))

	out := make([]entities.Quest, len(posted))
	for i, q := range posted {
		out[i] = *q
	}
	return &GenerateDailyQuestsOutput{Quests: out}, nil
}

func (s *service) newQuest(rank entities.GuildRank, day int) (*entities.Quest, error) {
	pick, err := s.roller.Roll(len(s.materialIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll quest material")
	}
	material, err := s.masterData.GetMaterial(s.materialIDs[pick-1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve quest material")
	}
	slack, err := s.roller.Roll(3)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll quest deadline")
	}

	tier := rank.Index()
	count := 1 + tier/3
	minQuality := entities.ClampQuality(int(entities.QualityD) + tier/2)
	// a draft rolls at most one grade above the base, so never ask for more
	if reachable := entities.ClampQuality(int(material.BaseQuality) + 1); minQuality > reachable {
		minQuality = reachable
	}

	return &entities.Quest{
		ID:              s.idGen.Generate(),
		Rank:            rank,
		MaterialID:      material.ID,
		RequiredCount:   count,
		MinQuality:      minQuality,
		RewardGold:      20 * count * (tier + 1),
		PromotionPoints: 30 + 10*count,
		PostedDay:       day,
		DeadlineDay:     day + slack,
		Status:          entities.QuestAvailable,
	}, nil
}

// ProcessDeadlines fails overdue accepted quests and returns their IDs
func (s *service) ProcessDeadlines(_ context.Context, input *ProcessDeadlinesInput) (*ProcessDeadlinesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	failed := []string{}
	for _, q := range s.quests {
		if q.Status == entities.QuestAccepted && q.DeadlineDay <= input.Day {
			q.Status = entities.QuestFailed
			failed = append(failed, q.ID)
		}
	}

	if len(failed) > 0 {
		slog.Info("Quests expired", "day", input.Day, "failed_quests", failed)
	}

	return &ProcessDeadlinesOutput{FailedQuestIDs: failed}, nil
}

// AcceptQuest takes an available posting
func (s *service) AcceptQuest(_ context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.find(input.QuestID)
	if err != nil {
		return nil, err
	}
	if q.Status != entities.QuestAvailable {
		return nil, errors.FailedPreconditionf("quest %s is %s", q.ID, q.Status).
			WithReason(errors.ReasonQuestNotAvailable)
	}
	q.Status = entities.QuestAccepted

	return &AcceptQuestOutput{Quest: *q}, nil
}

// DeliverQuest completes an accepted quest with exactly the required
// number of matching materials
func (s *service) DeliverQuest(_ context.Context, input *DeliverQuestInput) (*DeliverQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.find(input.QuestID)
	if err != nil {
		return nil, err
	}
	if q.Status != entities.QuestAccepted {
		return nil, errors.FailedPreconditionf("quest %s is %s", q.ID, q.Status).
			WithReason(errors.ReasonQuestNotAvailable)
	}
	if len(input.Materials) != q.RequiredCount {
		return nil, errors.FailedPreconditionf("quest %s needs %d materials, got %d",
			q.ID, q.RequiredCount, len(input.Materials)).
			WithReason(errors.ReasonQuestRequirementsUnmet)
	}
	for _, m := range input.Materials {
		if m.MaterialID != q.MaterialID {
			return nil, errors.FailedPreconditionf("quest %s needs %s, got %s",
				q.ID, q.MaterialID, m.MaterialID).
				WithReason(errors.ReasonQuestRequirementsUnmet)
		}
	}
	avg, err := quality.AverageQuality(input.Materials)
	if err != nil {
		return nil, err
	}
	if avg < q.MinQuality {
		return nil, errors.FailedPreconditionf("quest %s needs quality %s, got %s",
			q.ID, q.MinQuality, avg).
			WithReason(errors.ReasonQuestRequirementsUnmet)
	}
	q.Status = entities.QuestCompleted

	slog.Info("Quest delivered",
		"quest_id", q.ID,
		"quality", avg.String(),
		"reward_gold", q.RewardGold,
		"promotion_points", q.PromotionPoints)

	return &DeliverQuestOutput{
		Quest:           *q,
		RewardGold:      q.RewardGold,
		PromotionPoints: q.PromotionPoints,
	}, nil
}

// ListQuests returns every quest on the board in posting order
func (s *service) ListQuests(_ context.Context) (*ListQuestsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Quest, len(s.quests))
	for i, q := range s.quests {
		out[i] = *q
	}
	return &ListQuestsOutput{Quests: out}, nil
}

func (s *service) find(questID string) (*entities.Quest, error) {
	for _, q := range s.quests {
		if q.ID == questID {
			return q, nil
		}
	}
	return nil, errors.NotFoundf("quest %s not found", questID).
		WithReason(errors.ReasonQuestNotFound).
		WithMeta("quest_id", questID)
}
