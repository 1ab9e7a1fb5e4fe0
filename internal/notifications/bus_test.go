package notifications_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/notifications"
)

type BusTestSuite struct {
	suite.Suite
	ctx context.Context
	bus *notifications.Bus
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusTestSuite))
}

func (s *BusTestSuite) SetupTest() {
	s.ctx = context.Background()

	bus, err := notifications.NewBus(&notifications.Config{
		EventBus: events.NewBus(),
		GameID:   "game_test",
	})
	s.Require().NoError(err)
	s.bus = bus
}

func (s *BusTestSuite) TestNewBusValidation() {
	_, err := notifications.NewBus(&notifications.Config{})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "EventBus: is required")
	s.Assert().Contains(err.Error(), "GameID: is required")

	_, err = notifications.NewBus(nil)
	s.Assert().Error(err)
}

func (s *BusTestSuite) TestPublishDeliversPayload() {
	var received []notifications.Notification
	s.bus.Subscribe(notifications.EventPhaseChanged, func(_ context.Context, n notifications.Notification) error {
		received = append(received, n)
		return nil
	})

	s.bus.Publish(s.ctx, notifications.EventPhaseChanged, notifications.PhaseChanged{
		PreviousPhase: entities.PhaseQuestAccept,
		NewPhase:      entities.PhaseGathering,
	})
	s.bus.Publish(s.ctx, notifications.EventDayStarted, notifications.DayStarted{Day: 1})

	s.Require().Len(received, 1)
	s.Assert().Equal(notifications.EventPhaseChanged, received[0].Type)
	payload, ok := received[0].Payload.(notifications.PhaseChanged)
	s.Require().True(ok)
	s.Assert().Equal(entities.PhaseGathering, payload.NewPhase)
}

func (s *BusTestSuite) TestHandlerErrorIsSwallowed() {
	s.bus.Subscribe(notifications.EventDayEnded, func(context.Context, notifications.Notification) error {
		return fmt.Errorf("ui exploded")
	})

	s.NotPanics(func() {
		s.bus.Publish(s.ctx, notifications.EventDayEnded, notifications.DayEnded{CurrentDay: 2})
	})
}

func (s *BusTestSuite) TestUnsubscribe() {
	calls := 0
	id := s.bus.Subscribe(notifications.EventRankUp, func(context.Context, notifications.Notification) error {
		calls++
		return nil
	})

	s.bus.Publish(s.ctx, notifications.EventRankUp, notifications.RankUp{})
	s.Require().NoError(s.bus.Unsubscribe(id))
	s.bus.Publish(s.ctx, notifications.EventRankUp, notifications.RankUp{})

	s.Assert().Equal(1, calls)
}

func (s *BusTestSuite) TestDiscard() {
	var p notifications.Publisher = notifications.Discard{}
	s.NotPanics(func() {
		p.Publish(s.ctx, notifications.EventGameOver, entities.GameResult{})
	})
}
