package quest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/pkg/idgen"
	"github.com/KirkDiggler/guildcraft/internal/services/quest"
	"github.com/KirkDiggler/guildcraft/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	catalog *masterdata.Catalog
	roller  *testutils.ScriptedRoller
	svc     quest.Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	catalog, err := masterdata.LoadDefault()
	s.Require().NoError(err)
	s.catalog = catalog

	// material roll 1 (herb_common), deadline slack 2
	s.roller = testutils.NewScriptedRoller(1, 2)
	svc, err := quest.NewService(&quest.Config{
		MasterData:  catalog,
		DiceRoller:  s.roller,
		IDGenerator: idgen.NewSequential("quest"),
		MaterialIDs: []string{"herb_common", "crystal_star"},
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func instances(materialID string, grades ...entities.Quality) []entities.MaterialInstance {
	out := make([]entities.MaterialInstance, len(grades))
	for i, q := range grades {
		out[i] = entities.MaterialInstance{InstanceID: "m", MaterialID: materialID, Quality: q}
	}
	return out
}

func (s *ServiceTestSuite) TestNewServiceValidation() {
	_, err := quest.NewService(&quest.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "DiceRoller: is required")
	s.Contains(err.Error(), "MaterialIDs: is required")

	_, err = quest.NewService(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGenerateDailyQuests() {
	out, err := s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankG, Day: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Quests, quest.DefaultQuestsPerDay)

	q := out.Quests[0]
	s.Equal("quest_1", q.ID)
	s.Equal("herb_common", q.MaterialID)
	s.Equal(1, q.RequiredCount)
	s.Equal(entities.QualityD, q.MinQuality)
	s.Equal(20, q.RewardGold)
	s.Equal(40, q.PromotionPoints)
	s.Equal(3, q.DeadlineDay)
	s.Equal(entities.QuestAvailable, q.Status)
}

func (s *ServiceTestSuite) TestGenerateRejectsUnknownRank() {
	_, err := s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: "Z", Day: 1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestNewDayReplacesUnacceptedPostings() {
	_, err := s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankG, Day: 1})
	s.Require().NoError(err)
	_, err = s.svc.AcceptQuest(s.ctx, &quest.AcceptQuestInput{QuestID: "quest_1"})
	s.Require().NoError(err)

	_, err = s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankG, Day: 2})
	s.Require().NoError(err)

	list, err := s.svc.ListQuests(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list.Quests, 4)
	s.Equal("quest_1", list.Quests[0].ID)
	s.Equal(entities.QuestAccepted, list.Quests[0].Status)
	s.Equal("quest_4", list.Quests[1].ID)
}

func (s *ServiceTestSuite) TestProcessDeadlines() {
	_, err := s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankG, Day: 1})
	s.Require().NoError(err)
	_, err = s.svc.AcceptQuest(s.ctx, &quest.AcceptQuestInput{QuestID: "quest_2"})
	s.Require().NoError(err)

	out, err := s.svc.ProcessDeadlines(s.ctx, &quest.ProcessDeadlinesInput{Day: 2})
	s.Require().NoError(err)
	s.Empty(out.FailedQuestIDs)

	out, err = s.svc.ProcessDeadlines(s.ctx, &quest.ProcessDeadlinesInput{Day: 3})
	s.Require().NoError(err)
	s.Equal([]string{"quest_2"}, out.FailedQuestIDs)

	_, err = s.svc.DeliverQuest(s.ctx, &quest.DeliverQuestInput{
		QuestID:   "quest_2",
		Materials: instances("herb_common", entities.QualityC),
	})
	s.True(errors.HasReason(err, errors.ReasonQuestNotAvailable))
}

func (s *ServiceTestSuite) TestNewDayClearsSettledQuests() {
	_, err := s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankG, Day: 1})
	s.Require().NoError(err)
	for _, id := range []string{"quest_1", "quest_2", "quest_3"} {
		_, err = s.svc.AcceptQuest(s.ctx, &quest.AcceptQuestInput{QuestID: id})
		s.Require().NoError(err)
	}
	_, err = s.svc.DeliverQuest(s.ctx, &quest.DeliverQuestInput{
		QuestID:   "quest_1",
		Materials: instances("herb_common", entities.QualityC),
	})
	s.Require().NoError(err)
	_, err = s.svc.ProcessDeadlines(s.ctx, &quest.ProcessDeadlinesInput{Day: 3})
	s.Require().NoError(err)

	list, err := s.svc.ListQuests(s.ctx)
	s.Require().NoError(err)
	s.Len(list.Quests, 3, "settled quests stay visible for the rest of the day")

	// quest_2 and quest_3 failed at their deadline on day 3
	_, err = s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankG, Day: 4})
	s.Require().NoError(err)

	list, err = s.svc.ListQuests(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list.Quests, quest.DefaultQuestsPerDay)
	for _, q := range list.Quests {
		s.Equal(entities.QuestAvailable, q.Status)
		s.Equal(4, q.PostedDay)
	}
}

func (s *ServiceTestSuite) TestMinQualityStaysReachable() {
	// material rolls alternate herb_common (base C) and crystal_star (base S)
	s.roller = testutils.NewScriptedRoller(1, 2, 2, 2)
	svc, err := quest.NewService(&quest.Config{
		MasterData:  s.catalog,
		DiceRoller:  s.roller,
		IDGenerator: idgen.NewSequential("quest"),
		MaterialIDs: []string{"herb_common", "crystal_star"},
	})
	s.Require().NoError(err)

	out, err := svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankS, Day: 1})
	s.Require().NoError(err)

	s.Equal("herb_common", out.Quests[0].MaterialID)
	s.Equal(entities.QualityB, out.Quests[0].MinQuality)
	s.Equal("crystal_star", out.Quests[1].MaterialID)
	s.Equal(entities.QualityA, out.Quests[1].MinQuality)
}

func (s *ServiceTestSuite) TestAcceptQuestErrors() {
	_, err := s.svc.AcceptQuest(s.ctx, &quest.AcceptQuestInput{QuestID: "quest_9"})
	s.True(errors.IsNotFound(err))
	s.True(errors.HasReason(err, errors.ReasonQuestNotFound))

	_, err = s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankG, Day: 1})
	s.Require().NoError(err)
	_, err = s.svc.AcceptQuest(s.ctx, &quest.AcceptQuestInput{QuestID: "quest_1"})
	s.Require().NoError(err)

	_, err = s.svc.AcceptQuest(s.ctx, &quest.AcceptQuestInput{QuestID: "quest_1"})
	s.True(errors.IsFailedPrecondition(err))
	s.True(errors.HasReason(err, errors.ReasonQuestNotAvailable))
}

func (s *ServiceTestSuite) TestDeliverQuest() {
	// rank C asks for two materials of at least grade B
	_, err := s.svc.GenerateDailyQuests(s.ctx, &quest.GenerateDailyQuestsInput{Rank: entities.RankC, Day: 5})
	s.Require().NoError(err)
	accepted, err := s.svc.AcceptQuest(s.ctx, &quest.AcceptQuestInput{QuestID: "quest_1"})
	s.Require().NoError(err)
	s.Require().Equal(2, accepted.Quest.RequiredCount)
	s.Require().Equal(entities.QualityB, accepted.Quest.MinQuality)

	testCases := []struct {
		name      string
		materials []entities.MaterialInstance
	}{
		{name: "wrong count", materials: instances("herb_common", entities.QualityS)},
		{name: "wrong material", materials: instances("ore_iron", entities.QualityS, entities.QualityS)},
		{name: "quality too low", materials: instances("herb_common", entities.QualityD, entities.QualityC)},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.DeliverQuest(s.ctx, &quest.DeliverQuestInput{QuestID: "quest_1", Materials: tc.materials})
			s.True(errors.HasReason(err, errors.ReasonQuestRequirementsUnmet))
		})
	}

	out, err := s.svc.DeliverQuest(s.ctx, &quest.DeliverQuestInput{
		QuestID:   "quest_1",
		Materials: instances("herb_common", entities.QualityB, entities.QualityA),
	})
	s.Require().NoError(err)
	s.Equal(200, out.RewardGold)
	s.Equal(50, out.PromotionPoints)
	s.Equal(entities.QuestCompleted, out.Quest.Status)
}
