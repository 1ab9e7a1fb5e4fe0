package gathering_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/engine/quality"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/notifications"
	"github.com/KirkDiggler/guildcraft/internal/orchestrators/gathering"
	"github.com/KirkDiggler/guildcraft/internal/pkg/clock"
	"github.com/KirkDiggler/guildcraft/internal/pkg/idgen"
	draftsession "github.com/KirkDiggler/guildcraft/internal/repositories/draft_session"
	draftsessionmock "github.com/KirkDiggler/guildcraft/internal/repositories/draft_session/mock"
	"github.com/KirkDiggler/guildcraft/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx       context.Context
	catalog   *masterdata.Catalog
	repo      *draftsession.InMemoryRepository
	publisher *testutils.RecordingPublisher
	now       time.Time
	orch      gathering.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	catalog, err := masterdata.LoadDefault()
	s.Require().NoError(err)
	s.catalog = catalog
	s.repo = draftsession.NewInMemory()
	s.publisher = &testutils.RecordingPublisher{}
	s.now = time.Date(2025, time.May, 5, 8, 0, 0, 0, time.UTC)

	s.orch = s.newOrchestrator(s.repo, nil)
}

// newOrchestrator picks the first pool entry and keeps base quality on every roll
func (s *OrchestratorTestSuite) newOrchestrator(repo draftsession.Repository, legacyNames []string) gathering.Service {
	engine, err := quality.NewEngine(&quality.Config{
		MasterData:  s.catalog,
		DiceRoller:  testutils.NewScriptedRoller(2),
		IDGenerator: idgen.NewSequential("mat"),
	})
	s.Require().NoError(err)

	orch, err := gathering.NewOrchestrator(&gathering.Config{
		MasterData:            s.catalog,
		QualityEngine:         engine,
		DiceRoller:            testutils.NewScriptedRoller(1),
		SessionRepo:           repo,
		IDGenerator:           idgen.NewSequential("draft"),
		Publisher:             s.publisher,
		Clock:                 &clock.Fixed{At: s.now},
		LegacyRoundBonusNames: legacyNames,
	})
	s.Require().NoError(err)
	return orch
}

func (s *OrchestratorTestSuite) card(id string) entities.Card {
	card, err := s.catalog.GetCard(id)
	s.Require().NoError(err)
	return card
}

func (s *OrchestratorTestSuite) start(cardID string, enhancements ...entities.Card) *entities.DraftSession {
	out, err := s.orch.StartDraftGathering(s.ctx, &gathering.StartDraftGatheringInput{
		Card:             s.card(cardID),
		EnhancementCards: enhancements,
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := gathering.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = gathering.NewOrchestrator(&gathering.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "QualityEngine: is required")
	s.Contains(err.Error(), "SessionRepo: is required")
}

func (s *OrchestratorTestSuite) TestStartDraftGathering() {
	session := s.start("gather_forest")

	s.Equal("draft_1", session.SessionID)
	s.Equal(1, session.CurrentRound)
	s.Equal(3, session.MaxRounds)
	s.False(session.IsComplete)
	s.Equal(s.now, session.CreatedAt)
	s.Require().Len(session.CurrentOptions, gathering.OptionsPerRound)
	for _, option := range session.CurrentOptions {
		s.Equal("herb_common", option.MaterialID)
		s.Equal(entities.QualityC, option.Quality)
		s.Equal(1, option.Quantity)
	}

	current, err := s.orch.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(session, current)
	s.Equal([]notifications.EventType{notifications.EventGatheringStarted}, s.publisher.Types())
}

func (s *OrchestratorTestSuite) TestStartRequiresLoadedMasterData() {
	engine, err := quality.NewEngine(&quality.Config{
		MasterData:  s.catalog,
		DiceRoller:  testutils.NewScriptedRoller(2),
		IDGenerator: idgen.NewSequential("mat"),
	})
	s.Require().NoError(err)
	orch, err := gathering.NewOrchestrator(&gathering.Config{
		MasterData:    masterdata.NewCatalog(),
		QualityEngine: engine,
		DiceRoller:    testutils.NewScriptedRoller(1),
		SessionRepo:   draftsession.NewInMemory(),
		IDGenerator:   idgen.NewSequential("draft"),
	})
	s.Require().NoError(err)

	_, err = orch.StartDraftGathering(s.ctx, &gathering.StartDraftGatheringInput{Card: s.card("gather_forest")})
	s.True(errors.IsFailedPrecondition(err))
	s.True(errors.HasReason(err, errors.ReasonDataNotLoaded))
}

func (s *OrchestratorTestSuite) TestStartRejectsNonGatheringCards() {
	testCases := []struct {
		name string
		card entities.Card
	}{
		{name: "recipe", card: s.card("recipe_potion")},
		{name: "enhancement", card: s.card("enh_keen_eye")},
		{name: "nil", card: nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.StartDraftGathering(s.ctx, &gathering.StartDraftGatheringInput{Card: tc.card})
			s.True(errors.IsInvalidArgument(err))
			s.True(errors.HasReason(err, errors.ReasonInvalidCardType))
		})
	}
	s.Equal(0, s.repo.Len())
}

func (s *OrchestratorTestSuite) TestCanGather() {
	s.True(s.orch.CanGather(s.card("gather_mine")))
	s.False(s.orch.CanGather(s.card("recipe_ingot")))
	s.False(s.orch.CanGather(s.card("enh_light_pack")))
	s.False(s.orch.CanGather(nil))
}

func (s *OrchestratorTestSuite) TestRoundBonus() {
	testCases := []struct {
		name     string
		legacy   []string
		enhance  []entities.Card
		expected int
	}{
		{name: "no enhancements", expected: 2},
		{name: "catalog keen eye", enhance: []entities.Card{s.card("enh_keen_eye")}, expected: 3},
		{name: "reduce cost adds nothing", enhance: []entities.Card{s.card("enh_light_pack")}, expected: 2},
		{
			name: "zero value counts as one",
			enhance: []entities.Card{&entities.EnhancementCard{ID: "e", Name: "Lens", Effects: []entities.EnhancementEffect{
				{Type: entities.EffectIncreasePresentation},
			}}},
			expected: 3,
		},
		{
			name: "values accumulate",
			enhance: []entities.Card{
				&entities.EnhancementCard{ID: "e1", Effects: []entities.EnhancementEffect{{Type: entities.EffectIncreasePresentation, Value: 2}}},
				&entities.EnhancementCard{ID: "e2", Effects: []entities.EnhancementEffect{
					{Type: entities.EffectQualityUp, Value: 1},
					{Type: entities.EffectIncreasePresentation, Value: 1},
				}},
			},
			expected: 5,
		},
		{
			name:     "legacy name when configured",
			legacy:   []string{"Wide Basket"},
			enhance:  []entities.Card{&entities.EnhancementCard{ID: "e", Name: "Wide Basket"}},
			expected: 3,
		},
		{
			name:     "legacy name ignored when not configured",
			enhance:  []entities.Card{&entities.EnhancementCard{ID: "e", Name: "Wide Basket"}},
			expected: 2,
		},
		{
			name:   "structured effects win over legacy name",
			legacy: []string{"Wide Basket"},
			enhance: []entities.Card{&entities.EnhancementCard{ID: "e", Name: "Wide Basket", Effects: []entities.EnhancementEffect{
				{Type: entities.EffectReduceCost, Value: 1},
			}}},
			expected: 2,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			orch := s.newOrchestrator(draftsession.NewInMemory(), tc.legacy)
			out, err := orch.StartDraftGathering(s.ctx, &gathering.StartDraftGatheringInput{
				Card:             s.card("gather_meadow"),
				EnhancementCards: tc.enhance,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Session.MaxRounds)
		})
	}
}

func (s *OrchestratorTestSuite) TestEnhancementMustBeEnhancementCard() {
	_, err := s.orch.StartDraftGathering(s.ctx, &gathering.StartDraftGatheringInput{
		Card:             s.card("gather_meadow"),
		EnhancementCards: []entities.Card{s.card("recipe_potion")},
	})
	s.True(errors.HasReason(err, errors.ReasonInvalidCardType))
	s.Equal(0, s.repo.Len())
}

func (s *OrchestratorTestSuite) TestTwoSelectionsCompleteTwoRoundDraft() {
	session := s.start("gather_meadow")
	s.Require().Equal(2, session.MaxRounds)

	first, err := s.orch.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: session.SessionID, Index: 0})
	s.Require().NoError(err)
	s.False(first.Session.IsComplete)
	s.Equal(2, first.Session.CurrentRound)
	s.Len(first.Session.CurrentOptions, gathering.OptionsPerRound)
	s.Equal("mat_1", first.Material.InstanceID)

	second, err := s.orch.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: session.SessionID, Index: 2})
	s.Require().NoError(err)
	s.True(second.Session.IsComplete)
	s.Empty(second.Session.CurrentOptions)
	s.Len(second.Session.SelectedMaterials, 2)
}

func (s *OrchestratorTestSuite) TestSkipSelectionAdvancesWithoutPicking() {
	session := s.start("gather_meadow")

	_, err := s.orch.SkipSelection(s.ctx, &gathering.SkipSelectionInput{SessionID: session.SessionID})
	s.Require().NoError(err)
	out, err := s.orch.SkipSelection(s.ctx, &gathering.SkipSelectionInput{SessionID: session.SessionID})
	s.Require().NoError(err)

	s.True(out.Session.IsComplete)
	s.Empty(out.Session.CurrentOptions)
	s.Empty(out.Session.SelectedMaterials)
}

func (s *OrchestratorTestSuite) TestSelectMaterialErrors() {
	session := s.start("gather_meadow")

	s.Run("unknown session", func() {
		_, err := s.orch.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: "draft_404"})
		s.True(errors.IsNotFound(err))
		s.True(errors.HasReason(err, errors.ReasonSessionNotFound))
	})

	for _, index := range []int{-1, 3} {
		_, err := s.orch.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: session.SessionID, Index: index})
		s.True(errors.IsOutOfRange(err), "index %d", index)
		s.True(errors.HasReason(err, errors.ReasonInvalidSelection))
	}

	unchanged, err := s.orch.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, unchanged.CurrentRound)
	s.Empty(unchanged.SelectedMaterials)

	s.Run("completed session", func() {
		for i := 0; i < 2; i++ {
			_, err := s.orch.SkipSelection(s.ctx, &gathering.SkipSelectionInput{SessionID: session.SessionID})
			s.Require().NoError(err)
		}
		_, err := s.orch.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: session.SessionID, Index: 0})
		s.True(errors.IsFailedPrecondition(err))
		s.True(errors.HasReason(err, errors.ReasonSessionComplete))

		_, err = s.orch.SkipSelection(s.ctx, &gathering.SkipSelectionInput{SessionID: session.SessionID})
		s.True(errors.HasReason(err, errors.ReasonSessionComplete))
	})
}

func (s *OrchestratorTestSuite) TestEndGathering() {
	session := s.start("gather_forest")
	for i := 0; i < 3; i++ {
		_, err := s.orch.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: session.SessionID, Index: 0})
		s.Require().NoError(err)
	}

	out, err := s.orch.EndGathering(s.ctx, &gathering.EndGatheringInput{SessionID: session.SessionID})
	s.Require().NoError(err)
	s.Len(out.Result.Materials, 3)
	s.Equal(entities.GatheringCost{ActionPointCost: 3, ExtraDays: 0}, out.Result.Cost)

	current, err := s.orch.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(current)
	s.Equal(0, s.repo.Len())

	s.Equal([]notifications.EventType{
		notifications.EventGatheringStarted,
		notifications.EventMaterialSelected,
		notifications.EventMaterialSelected,
		notifications.EventMaterialSelected,
		notifications.EventGatheringEnded,
	}, s.publisher.Types())

	_, err = s.orch.EndGathering(s.ctx, &gathering.EndGatheringInput{SessionID: session.SessionID})
	s.True(errors.HasReason(err, errors.ReasonSessionNotFound))
}

func (s *OrchestratorTestSuite) TestEndingOlderSessionKeepsCurrent() {
	older := s.start("gather_meadow")
	newer := s.start("gather_forest")

	_, err := s.orch.EndGathering(s.ctx, &gathering.EndGatheringInput{SessionID: older.SessionID})
	s.Require().NoError(err)

	current, err := s.orch.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(newer.SessionID, current.SessionID)
}

func (s *OrchestratorTestSuite) TestActiveOperationAndAbort() {
	s.False(s.orch.HasActiveOperation(s.ctx))
	s.NoError(s.orch.AbortCurrent(s.ctx))

	session := s.start("gather_meadow")
	s.True(s.orch.HasActiveOperation(s.ctx))

	s.Require().NoError(s.orch.AbortCurrent(s.ctx))
	s.False(s.orch.HasActiveOperation(s.ctx))
	s.Equal(0, s.repo.Len())

	_, err := s.orch.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: session.SessionID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCompletedSessionIsNotActive() {
	session := s.start("gather_meadow")
	for i := 0; i < 2; i++ {
		_, err := s.orch.SkipSelection(s.ctx, &gathering.SkipSelectionInput{SessionID: session.SessionID})
		s.Require().NoError(err)
	}
	s.False(s.orch.HasActiveOperation(s.ctx))
}

func (s *OrchestratorTestSuite) TestIndependentArenas() {
	otherRepo := draftsession.NewInMemory()
	other := s.newOrchestrator(otherRepo, nil)

	mine := s.start("gather_meadow")

	_, err := other.SelectMaterial(s.ctx, &gathering.SelectMaterialInput{SessionID: mine.SessionID})
	s.True(errors.HasReason(err, errors.ReasonSessionNotFound))

	current, err := other.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(current)
	s.Equal(0, otherRepo.Len())
}

func (s *OrchestratorTestSuite) TestStoreFailureLeavesNoCurrentSession() {
	ctrl := gomock.NewController(s.T())
	repo := draftsessionmock.NewMockRepository(ctrl)
	orch := s.newOrchestrator(repo, nil)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := orch.StartDraftGathering(s.ctx, &gathering.StartDraftGatheringInput{Card: s.card("gather_meadow")})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	current, err := orch.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(current)
	s.False(orch.HasActiveOperation(s.ctx))
}
