// Package phase implements the day and phase state machine of a guild
// playthrough, including the win and loss checks run at the end of each day
package phase

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/notifications"
	"github.com/KirkDiggler/guildcraft/internal/pkg/clock"
	"github.com/KirkDiggler/guildcraft/internal/services/hand"
	"github.com/KirkDiggler/guildcraft/internal/services/quest"
)

// Service defines the state machine operations. A Service owns one
// playthrough and is not safe for concurrent use; the host serializes calls.
type Service interface {
	StartNewGame(ctx context.Context) error
	ContinueGame(ctx context.Context, input *ContinueGameInput) error

	StartDay(ctx context.Context) error
	// EndDay returns the terminal result when the day ends the game
	EndDay(ctx context.Context) (*entities.GameResult, error)
	Rest(ctx context.Context) (*entities.GameResult, error)

	StartPhase(ctx context.Context, phase entities.GamePhase) error
	EndPhase(ctx context.Context) (*entities.GameResult, error)
	SkipPhase(ctx context.Context) (*entities.GameResult, error)
	SwitchPhase(ctx context.Context, input *SwitchPhaseInput) error

	CheckGameOver() *entities.GameResult
	CheckGameClear() *entities.GameResult
	// Result returns the result that ended the game, or nil while it is running
	Result() *entities.GameResult

	GetState() entities.GameState
	Snapshot() *entities.SaveData

	ConsumeActionPoints(ctx context.Context, n int) error
	ApplyGatheringCost(ctx context.Context, cost entities.GatheringCost) error
	AddGold(ctx context.Context, n int) error
	AddPromotionPoints(ctx context.Context, n int) error
}

// Defaults used when the matching Config field is zero
const (
	DefaultInitialDays        = 30
	DefaultInitialGold        = 100
	DefaultPromotionThreshold = 100
)

// Config holds the dependencies and rules for the state machine
type Config struct {
	QuestService quest.Service
	HandService  hand.Service
	// Guard is optional; without it no operation is ever active
	Guard     ActiveOperationGuard
	Publisher notifications.Publisher
	Clock     clock.Clock

	InitialDays        int
	InitialGold        int
	PromotionThreshold int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.QuestService == nil {
		vb.RequiredField("QuestService")
	}
	if c.HandService == nil {
		vb.RequiredField("HandService")
	}
	if c.InitialDays < 0 {
		vb.Field("InitialDays", "must not be negative")
	}
	if c.InitialGold < 0 {
		vb.Field("InitialGold", "must not be negative")
	}
	if c.PromotionThreshold < 0 {
		vb.Field("PromotionThreshold", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	quests    quest.Service
	hand      hand.Service
	guard     ActiveOperationGuard
	publisher notifications.Publisher
	clock     clock.Clock

	initialDays int
	initialGold int
	threshold   int

	state  entities.GameState
	result *entities.GameResult
}

// NewOrchestrator creates a state machine positioned before day one. Call
// StartNewGame or ContinueGame before anything else.
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		quests:      cfg.QuestService,
		hand:        cfg.HandService,
		guard:       cfg.Guard,
		publisher:   cfg.Publisher,
		clock:       cfg.Clock,
		initialDays: orDefault(cfg.InitialDays, DefaultInitialDays),
		initialGold: orDefault(cfg.InitialGold, DefaultInitialGold),
		threshold:   orDefault(cfg.PromotionThreshold, DefaultPromotionThreshold),
	}
	if o.publisher == nil {
		o.publisher = notifications.Discard{}
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	o.state = o.initialState()

	return o, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func (o *orchestrator) initialState() entities.GameState {
	return entities.GameState{
		CurrentDay:     entities.StartingDay,
		RemainingDays:  o.initialDays,
		CurrentPhase:   entities.PhaseQuestAccept,
		CurrentRank:    entities.InitialRank,
		ActionPoints:   entities.MaxActionPoints,
		Gold:           o.initialGold,
		PromotionGauge: 0,
	}
}

// StartNewGame resets every field to its starting value and begins day one.
// If day one cannot be posted the previous game is left as it was.
func (o *orchestrator) StartNewGame(ctx context.Context) error {
	fresh := o.initialState()
	if err := o.postQuests(ctx, fresh); err != nil {
		return err
	}

	o.state = fresh
	o.result = nil

	slog.Info("New game started",
		"remaining_days", o.state.RemainingDays,
		"gold", o.state.Gold)

	o.beginDay(ctx)
	return nil
}

// ContinueGame restores a saved game. Invalid save data leaves the current
// state untouched.
func (o *orchestrator) ContinueGame(_ context.Context, input *ContinueGameInput) error {
	if input == nil || input.SaveData == nil {
		return invalidSave("save data is required")
	}
	save := input.SaveData
	if save.Version == "" {
		return invalidSave("save data has no version")
	}
	if save.GameState == nil {
		return invalidSave("save data has no game state")
	}
	if !save.GameState.CurrentPhase.IsValid() {
		return invalidSave("save data has an unknown phase").
			WithMeta("phase", string(save.GameState.CurrentPhase))
	}
	if !save.GameState.CurrentRank.IsValid() {
		return invalidSave("save data has an unknown rank").
			WithMeta("rank", string(save.GameState.CurrentRank))
	}

	o.state = *save.GameState
	o.result = nil

	slog.Info("Game restored",
		"version", save.Version,
		"day", o.state.CurrentDay,
		"phase", o.state.CurrentPhase,
		"rank", o.state.CurrentRank)

	return nil
}

func invalidSave(message string) *errors.Error {
	return errors.InvalidArgument(message).WithReason(errors.ReasonInvalidSaveData)
}

// StartDay refills action points, posts the day's quests and returns to
// the quest board
func (o *orchestrator) StartDay(ctx context.Context) error {
	if err := o.ensureRunning(); err != nil {
		return err
	}

	if err := o.postQuests(ctx, o.state); err != nil {
		return err
	}

	o.beginDay(ctx)
	return nil
}

func (o *orchestrator) postQuests(ctx context.Context, state entities.GameState) error {
	if _, err := o.quests.GenerateDailyQuests(ctx, &quest.GenerateDailyQuestsInput{
		Rank: state.CurrentRank,
		Day:  state.CurrentDay,
	}); err != nil {
		return errors.Wrap(err, "failed to generate daily quests")
	}
	return nil
}

// beginDay holds the infallible half of a day start; quests must already be
// posted
func (o *orchestrator) beginDay(ctx context.Context) {
	o.state.ActionPoints = entities.MaxActionPoints

	slog.Info("Day started",
		"day", o.state.CurrentDay,
		"remaining_days", o.state.RemainingDays,
		"rank", o.state.CurrentRank)

	o.publisher.Publish(ctx, notifications.EventDayStarted, notifications.DayStarted{
		Day:           o.state.CurrentDay,
		RemainingDays: o.state.RemainingDays,
	})

	if o.state.CurrentPhase != entities.PhaseQuestAccept {
		o.setPhase(ctx, entities.PhaseQuestAccept)
	}
}

// EndDay expires overdue quests, advances the calendar and checks for the
// end of the game. Game clear takes precedence over game over. The next
// day's quests are posted before the calendar moves, so a failure leaves
// the day, the phase and the event stream unchanged.
func (o *orchestrator) EndDay(ctx context.Context) (*entities.GameResult, error) {
	if err := o.ensureRunning(); err != nil {
		return nil, err
	}

	expired, err := o.quests.ProcessDeadlines(ctx, &quest.ProcessDeadlinesInput{Day: o.state.CurrentDay})
	if err != nil {
		return nil, errors.Wrap(err, "failed to process quest deadlines")
	}

	next := o.state
	next.RemainingDays--
	next.CurrentDay++

	result := gameClear(next)
	if result == nil {
		result = gameOver(next)
	}
	if result == nil {
		if err := o.postQuests(ctx, next); err != nil {
			return nil, err
		}
	}

	o.state = next

	slog.Info("Day ended",
		"current_day", o.state.CurrentDay,
		"remaining_days", o.state.RemainingDays,
		"failed_quests", len(expired.FailedQuestIDs))

	o.publisher.Publish(ctx, notifications.EventDayEnded, notifications.DayEnded{
		FailedQuests:  expired.FailedQuestIDs,
		RemainingDays: o.state.RemainingDays,
		CurrentDay:    o.state.CurrentDay,
	})

	switch {
	case result == nil:
		o.beginDay(ctx)
		return nil, nil
	case result.Reason == entities.ReasonMaxRankReached:
		o.finish(ctx, notifications.EventGameCleared, result)
	default:
		o.finish(ctx, notifications.EventGameOver, result)
	}
	return result, nil
}

func (o *orchestrator) finish(ctx context.Context, event notifications.EventType, result *entities.GameResult) {
	o.result = result

	slog.Info("Game finished",
		"reason", result.Reason,
		"final_rank", result.FinalRank,
		"total_days", result.TotalDays)

	o.publisher.Publish(ctx, event, *result)
}

// Rest spends the day recovering: the whole hand is swapped for a fresh one
// and the day ends. Action points are not charged.
func (o *orchestrator) Rest(ctx context.Context) (*entities.GameResult, error) {
	if err := o.ensureRunning(); err != nil {
		return nil, err
	}

	if _, err := o.hand.RefreshHand(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to refresh hand")
	}

	slog.Info("Resting", "day", o.state.CurrentDay)

	return o.EndDay(ctx)
}

// StartPhase enters a phase. Entering the current phase is an error.
func (o *orchestrator) StartPhase(ctx context.Context, phase entities.GamePhase) error {
	if !phase.IsValid() {
		return errors.InvalidArgumentf("unknown phase %q", phase)
	}
	if err := o.ensureRunning(); err != nil {
		return err
	}
	if phase == o.state.CurrentPhase {
		return errors.FailedPreconditionf("already in phase %s", phase).
			WithReason(errors.ReasonSamePhase)
	}

	o.setPhase(ctx, phase)
	return nil
}

// EndPhase moves to the next phase of the day. Ending DELIVERY ends the day.
func (o *orchestrator) EndPhase(ctx context.Context) (*entities.GameResult, error) {
	if err := o.ensureRunning(); err != nil {
		return nil, err
	}

	next, ok := nextPhase[o.state.CurrentPhase]
	if !ok {
		return o.EndDay(ctx)
	}
	return nil, o.StartPhase(ctx, next)
}

// SkipPhase behaves like EndPhase; it is a separate entry point so the
// player's intent shows up in the logs
func (o *orchestrator) SkipPhase(ctx context.Context) (*entities.GameResult, error) {
	slog.Info("Phase skipped", "phase", o.state.CurrentPhase, "day", o.state.CurrentDay)
	return o.EndPhase(ctx)
}

// SwitchPhase jumps straight to a phase. An active operation blocks the
// jump unless ForceAbort is set, in which case it is aborted first.
func (o *orchestrator) SwitchPhase(ctx context.Context, input *SwitchPhaseInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if !input.Target.IsValid() {
		return errors.InvalidArgumentf("unknown phase %q", input.Target)
	}
	if err := o.ensureRunning(); err != nil {
		return err
	}
	if input.Target == o.state.CurrentPhase {
		return nil
	}

	if o.guard != nil && o.guard.HasActiveOperation(ctx) {
		if !input.ForceAbort {
			return errors.FailedPreconditionf("cannot switch to %s while an operation is active", input.Target).
				WithReason(errors.ReasonSessionAbortRejected)
		}
		if err := o.guard.AbortCurrent(ctx); err != nil {
			return errors.Wrap(err, "failed to abort active operation")
		}
	}

	o.setPhase(ctx, input.Target)
	return nil
}

func (o *orchestrator) setPhase(ctx context.Context, phase entities.GamePhase) {
	previous := o.state.CurrentPhase
	o.state.CurrentPhase = phase

	slog.Info("Phase changed",
		"previous_phase", previous,
		"new_phase", phase,
		"day", o.state.CurrentDay)

	o.publisher.Publish(ctx, notifications.EventPhaseChanged, notifications.PhaseChanged{
		PreviousPhase: previous,
		NewPhase:      phase,
	})
}

// CheckGameOver reports a loss when the days have run out below the top rank
func (o *orchestrator) CheckGameOver() *entities.GameResult {
	return gameOver(o.state)
}

// CheckGameClear reports a win once the top rank is reached
func (o *orchestrator) CheckGameClear() *entities.GameResult {
	return gameClear(o.state)
}

func gameOver(state entities.GameState) *entities.GameResult {
	if state.RemainingDays > 0 || state.CurrentRank.IsMax() {
		return nil
	}
	return &entities.GameResult{
		Reason:    entities.ReasonTimeExpired,
		FinalRank: state.CurrentRank,
		TotalDays: state.CurrentDay - 1,
	}
}

func gameClear(state entities.GameState) *entities.GameResult {
	if !state.CurrentRank.IsMax() {
		return nil
	}
	return &entities.GameResult{
		Reason:    entities.ReasonMaxRankReached,
		FinalRank: state.CurrentRank,
		TotalDays: state.CurrentDay - 1,
	}
}

func (o *orchestrator) Result() *entities.GameResult {
	if o.result == nil {
		return nil
	}
	r := *o.result
	return &r
}

// GetState returns a copy of the game state
func (o *orchestrator) GetState() entities.GameState {
	return o.state
}

// Snapshot returns save data for the current state
func (o *orchestrator) Snapshot() *entities.SaveData {
	state := o.state
	return &entities.SaveData{
		Version:   SaveVersion,
		GameState: &state,
		SavedAt:   o.clock.Now().UTC(),
	}
}

// ConsumeActionPoints spends action points, failing without change when
// there are not enough
func (o *orchestrator) ConsumeActionPoints(_ context.Context, n int) error {
	if err := o.ensureRunning(); err != nil {
		return err
	}
	if n < 0 {
		return errors.InvalidArgument("action points to consume must not be negative")
	}
	if n > o.state.ActionPoints {
		return errors.FailedPreconditionf("need %d action points, have %d", n, o.state.ActionPoints).
			WithReason(errors.ReasonInsufficientActionPoints)
	}
	o.state.ActionPoints -= n
	return nil
}

// ApplyGatheringCost charges a finished draft. The draft already happened,
// so action points bottom out at zero instead of failing; extra days come
// off the calendar.
func (o *orchestrator) ApplyGatheringCost(_ context.Context, cost entities.GatheringCost) error {
	if err := o.ensureRunning(); err != nil {
		return err
	}
	if cost.ActionPointCost < 0 || cost.ExtraDays < 0 {
		return errors.InvalidArgument("gathering cost must not be negative")
	}

	o.state.ActionPoints = max(0, o.state.ActionPoints-cost.ActionPointCost)
	o.state.RemainingDays -= cost.ExtraDays

	slog.Info("Gathering cost applied",
		"ap_cost", cost.ActionPointCost,
		"extra_days", cost.ExtraDays,
		"action_points", o.state.ActionPoints,
		"remaining_days", o.state.RemainingDays)

	return nil
}

// AddGold adds or, with a negative amount, spends gold
func (o *orchestrator) AddGold(_ context.Context, n int) error {
	if err := o.ensureRunning(); err != nil {
		return err
	}
	if o.state.Gold+n < 0 {
		return errors.FailedPreconditionf("need %d gold, have %d", -n, o.state.Gold).
			WithReason(errors.ReasonInsufficientGold)
	}
	o.state.Gold += n
	return nil
}

// AddPromotionPoints fills the promotion gauge. Every full gauge promotes
// the guild one rank; the gauge stays empty at the top rank.
func (o *orchestrator) AddPromotionPoints(ctx context.Context, n int) error {
	if err := o.ensureRunning(); err != nil {
		return err
	}
	if n < 0 {
		return errors.InvalidArgument("promotion points must not be negative")
	}

	o.state.PromotionGauge += n
	for o.state.PromotionGauge >= o.threshold && !o.state.CurrentRank.IsMax() {
		o.state.PromotionGauge -= o.threshold
		previous := o.state.CurrentRank
		o.state.CurrentRank = previous.Next()

		slog.Info("Guild promoted",
			"previous_rank", previous,
			"new_rank", o.state.CurrentRank,
			"day", o.state.CurrentDay)

		o.publisher.Publish(ctx, notifications.EventRankUp, notifications.RankUp{
			PreviousRank: previous,
			NewRank:      o.state.CurrentRank,
		})
	}
	if o.state.CurrentRank.IsMax() {
		o.state.PromotionGauge = 0
	}
	return nil
}

func (o *orchestrator) ensureRunning() error {
	if o.result != nil {
		return errors.FailedPreconditionf("game already ended: %s", o.result.Reason).
			WithReason(errors.ReasonGameFinished)
	}
	return nil
}
