// Package gathering implements the draft gathering orchestrator: a
// multi-round draft offering three materials per round from a gathering
// card's pool
package gathering

//go:generate mockgen -destination=mock/mock_service.go -package=gatheringmock github.com/KirkDiggler/guildcraft/internal/orchestrators/gathering Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/engine/quality"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/notifications"
	"github.com/KirkDiggler/guildcraft/internal/pkg/clock"
	"github.com/KirkDiggler/guildcraft/internal/pkg/idgen"
	draftsession "github.com/KirkDiggler/guildcraft/internal/repositories/draft_session"
)

// Service defines the draft gathering operations
type Service interface {
	// StartDraftGathering opens a draft for a gathering card and makes it current
	StartDraftGathering(ctx context.Context, input *StartDraftGatheringInput) (*StartDraftGatheringOutput, error)

	// SelectMaterial takes one of the current options and advances the round
	SelectMaterial(ctx context.Context, input *SelectMaterialInput) (*SelectMaterialOutput, error)

	// SkipSelection advances the round without taking anything
	SkipSelection(ctx context.Context, input *SkipSelectionInput) (*SkipSelectionOutput, error)

	// EndGathering prices the draft, removes it and returns the materials
	EndGathering(ctx context.Context, input *EndGatheringInput) (*EndGatheringOutput, error)

	// GetCurrentSession returns the current draft, or nil when there is none
	GetCurrentSession(ctx context.Context) (*entities.DraftSession, error)

	// CanGather reports whether the card can open a draft
	CanGather(card entities.Card) bool

	// HasActiveOperation reports whether an unfinished draft is current
	HasActiveOperation(ctx context.Context) bool

	// AbortCurrent drops the current draft without pricing it
	AbortCurrent(ctx context.Context) error
}

// Config holds the dependencies for the gathering orchestrator. Each
// orchestrator owns its SessionRepo; independent games need independent
// repositories.
type Config struct {
	MasterData    masterdata.Client
	QualityEngine quality.Engine
	DiceRoller    dice.Roller
	SessionRepo   draftsession.Repository
	IDGenerator   idgen.Generator
	Publisher     notifications.Publisher
	Clock         clock.Clock
	// LegacyRoundBonusNames lists enhancement card names that add one round
	// when the card carries no structured effects
	LegacyRoundBonusNames []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MasterData == nil {
		vb.RequiredField("MasterData")
	}
	if c.QualityEngine == nil {
		vb.RequiredField("QualityEngine")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	masterData  masterdata.Client
	quality     quality.Engine
	roller      dice.Roller
	sessionRepo draftsession.Repository
	idGen       idgen.Generator
	publisher   notifications.Publisher
	clock       clock.Clock
	legacyNames map[string]struct{}

	mu        sync.Mutex
	currentID string
}

// NewOrchestrator creates a new gathering orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = notifications.Discard{}
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	legacy := make(map[string]struct{}, len(cfg.LegacyRoundBonusNames))
	for _, name := range cfg.LegacyRoundBonusNames {
		legacy[name] = struct{}{}
	}

	return &orchestrator{
		masterData:  cfg.MasterData,
		quality:     cfg.QualityEngine,
		roller:      cfg.DiceRoller,
		sessionRepo: cfg.SessionRepo,
		idGen:       cfg.IDGenerator,
		publisher:   publisher,
		clock:       clk,
		legacyNames: legacy,
	}, nil
}

// StartDraftGathering opens a draft. The round count is the card's
// presentation count plus the round bonus of every enhancement card.
func (o *orchestrator) StartDraftGathering(ctx context.Context, input *StartDraftGatheringInput) (*StartDraftGatheringOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !o.masterData.IsLoaded() {
		return nil, errors.FailedPrecondition("master data is not loaded").
			WithReason(errors.ReasonDataNotLoaded)
	}

	card, err := asGatheringCard(input.Card)
	if err != nil {
		return nil, err
	}
	if len(card.MaterialPool) == 0 {
		return nil, errors.InvalidArgumentf("gathering card %s has an empty material pool", card.ID)
	}

	bonus := 0
	for _, c := range input.EnhancementCards {
		n, err := o.roundBonus(c)
		if err != nil {
			return nil, err
		}
		bonus += n
	}

	session := &entities.DraftSession{
		SessionID:         o.idGen.Generate(),
		Card:              *card,
		CurrentRound:      1,
		MaxRounds:         card.PresentationCount + bonus,
		SelectedMaterials: []entities.MaterialInstance{},
		CurrentOptions:    []entities.MaterialOption{},
		CreatedAt:         o.clock.Now().UTC(),
	}
	session.Card.MaterialPool = append([]string(nil), card.MaterialPool...)

	if session.CurrentRound > session.MaxRounds {
		session.IsComplete = true
	} else {
		options, err := o.generateOptions(session.Card.MaterialPool)
		if err != nil {
			return nil, err
		}
		session.CurrentOptions = options
	}

	if _, err := o.sessionRepo.Create(ctx, draftsession.CreateInput{Session: session}); err != nil {
		return nil, errors.Wrap(err, "failed to store draft session")
	}

	o.mu.Lock()
	o.currentID = session.SessionID
	o.mu.Unlock()

	slog.Info("Draft gathering started",
		"session_id", session.SessionID,
		"card_id", card.ID,
		"max_rounds", session.MaxRounds,
		"round_bonus", bonus)

	o.publisher.Publish(ctx, notifications.EventGatheringStarted, notifications.GatheringStarted{
		Session: *session,
	})

	return &StartDraftGatheringOutput{Session: session}, nil
}

// SelectMaterial instantiates the chosen option and advances the draft
func (o *orchestrator) SelectMaterial(ctx context.Context, input *SelectMaterialInput) (*SelectMaterialOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.openSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if input.Index < 0 || input.Index >= len(session.CurrentOptions) {
		return nil, errors.OutOfRangef("selection index %d is outside 0..%d",
			input.Index, len(session.CurrentOptions)-1).
			WithReason(errors.ReasonInvalidSelection).
			WithMeta("session_id", session.SessionID)
	}

	option := session.CurrentOptions[input.Index]
	material, err := o.quality.CreateInstance(option.MaterialID, option.Quality)
	if err != nil {
		return nil, err
	}
	session.SelectedMaterials = append(session.SelectedMaterials, *material)

	if err := o.advance(ctx, session); err != nil {
		return nil, err
	}

	slog.Info("Material selected",
		"session_id", session.SessionID,
		"material_id", material.MaterialID,
		"quality", material.Quality.String(),
		"round", session.CurrentRound,
		"complete", session.IsComplete)

	o.publisher.Publish(ctx, notifications.EventMaterialSelected, notifications.MaterialSelected{
		SessionID: session.SessionID,
		Material:  *material,
	})

	return &SelectMaterialOutput{Session: session, Material: material}, nil
}

// SkipSelection advances the draft without taking an option
func (o *orchestrator) SkipSelection(ctx context.Context, input *SkipSelectionInput) (*SkipSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.openSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := o.advance(ctx, session); err != nil {
		return nil, err
	}

	slog.Info("Draft round skipped",
		"session_id", session.SessionID,
		"round", session.CurrentRound,
		"complete", session.IsComplete)

	return &SkipSelectionOutput{Session: session}, nil
}

// EndGathering finalizes a draft whether or not every round was played
func (o *orchestrator) EndGathering(ctx context.Context, input *EndGatheringInput) (*EndGatheringOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	deleted, err := o.sessionRepo.Delete(ctx, draftsession.DeleteInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	session := deleted.Session

	o.mu.Lock()
	if o.currentID == session.SessionID {
		o.currentID = ""
	}
	o.mu.Unlock()

	result := &entities.GatheringResult{
		Materials: session.SelectedMaterials,
		Cost:      CalculateGatheringCost(session.Card.BaseCost, len(session.SelectedMaterials)),
	}

	slog.Info("Draft gathering ended",
		"session_id", session.SessionID,
		"materials", len(result.Materials),
		"ap_cost", result.Cost.ActionPointCost,
		"extra_days", result.Cost.ExtraDays)

	o.publisher.Publish(ctx, notifications.EventGatheringEnded, notifications.GatheringEnded{
		SessionID: session.SessionID,
		Materials: result.Materials,
		Cost:      result.Cost,
	})

	return &EndGatheringOutput{Result: result}, nil
}

// GetCurrentSession returns the current draft. A current session that has
// vanished from storage is forgotten.
func (o *orchestrator) GetCurrentSession(ctx context.Context) (*entities.DraftSession, error) {
	o.mu.Lock()
	currentID := o.currentID
	o.mu.Unlock()

	if currentID == "" {
		return nil, nil
	}

	out, err := o.sessionRepo.Get(ctx, draftsession.GetInput{SessionID: currentID})
	if err != nil {
		if errors.IsNotFound(err) {
			o.clearCurrent(currentID)
			return nil, nil
		}
		return nil, err
	}
	return out.Session, nil
}

// CanGather reports whether the card is a gathering card
func (o *orchestrator) CanGather(card entities.Card) bool {
	_, err := asGatheringCard(card)
	return err == nil
}

// HasActiveOperation reports whether an unfinished draft is current. A
// storage failure counts as active so callers do not discard work blindly.
func (o *orchestrator) HasActiveOperation(ctx context.Context) bool {
	session, err := o.GetCurrentSession(ctx)
	if err != nil {
		slog.Warn("Failed to read current draft session", "error", err)
		return true
	}
	return session != nil && !session.IsComplete
}

// AbortCurrent evicts the current draft. Its materials are lost and no cost
// is charged.
func (o *orchestrator) AbortCurrent(ctx context.Context) error {
	o.mu.Lock()
	currentID := o.currentID
	o.mu.Unlock()

	if currentID == "" {
		return nil
	}

	if _, err := o.sessionRepo.Delete(ctx, draftsession.DeleteInput{SessionID: currentID}); err != nil && !errors.IsNotFound(err) {
		return errors.Wrap(err, "failed to abort draft session")
	}
	o.clearCurrent(currentID)

	slog.Info("Draft gathering aborted", "session_id", currentID)
	return nil
}

// openSession loads a session that can still take selections
func (o *orchestrator) openSession(ctx context.Context, sessionID string) (*entities.DraftSession, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.sessionRepo.Get(ctx, draftsession.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	if out.Session.IsComplete {
		return nil, errors.FailedPrecondition("draft session is already complete").
			WithReason(errors.ReasonSessionComplete).
			WithMeta("session_id", sessionID)
	}
	return out.Session, nil
}

// advance moves to the next round, completing the session after the last
// one, and writes it back
func (o *orchestrator) advance(ctx context.Context, session *entities.DraftSession) error {
	session.CurrentRound++
	if session.CurrentRound > session.MaxRounds {
		session.IsComplete = true
		session.CurrentOptions = []entities.MaterialOption{}
	} else {
		options, err := o.generateOptions(session.Card.MaterialPool)
		if err != nil {
			return err
		}
		session.CurrentOptions = options
	}

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to update draft session")
	}
	return nil
}

// generateOptions draws OptionsPerRound materials from the pool with
// replacement and rolls a quality for each
func (o *orchestrator) generateOptions(pool []string) ([]entities.MaterialOption, error) {
	options := make([]entities.MaterialOption, 0, OptionsPerRound)
	for i := 0; i < OptionsPerRound; i++ {
		pick, err := o.roller.Roll(len(pool))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll material option")
		}
		material, err := o.masterData.GetMaterial(pool[pick-1])
		if err != nil {
			return nil, err
		}
		q, err := o.quality.GenerateRandomQuality(material.BaseQuality)
		if err != nil {
			return nil, err
		}
		options = append(options, entities.MaterialOption{
			MaterialID: material.ID,
			Quality:    q,
			Quantity:   1,
		})
	}
	return options, nil
}

// roundBonus returns the extra rounds an enhancement card grants.
// INCREASE_PRESENTATION effects add their value, with zero meaning one.
// Cards without structured effects fall back to the legacy name list.
func (o *orchestrator) roundBonus(card entities.Card) (int, error) {
	var enh *entities.EnhancementCard
	switch c := card.(type) {
	case *entities.EnhancementCard:
		enh = c
	case *entities.GatheringCard, *entities.RecipeCard:
		return 0, errors.InvalidArgumentf("card %s is %s, not an enhancement", c.GetID(), c.GetType()).
			WithReason(errors.ReasonInvalidCardType)
	default:
		return 0, errors.InvalidArgument("enhancement card is required").
			WithReason(errors.ReasonInvalidCardType)
	}

	if len(enh.Effects) == 0 {
		if _, ok := o.legacyNames[enh.Name]; ok {
			return 1, nil
		}
		return 0, nil
	}

	bonus := 0
	for _, effect := range enh.Effects {
		switch effect.Type {
		case entities.EffectIncreasePresentation:
			if effect.Value <= 0 {
				bonus++
			} else {
				bonus += effect.Value
			}
		case entities.EffectReduceCost, entities.EffectQualityUp:
		}
	}
	return bonus, nil
}

func (o *orchestrator) clearCurrent(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.currentID == sessionID {
		o.currentID = ""
	}
}

func asGatheringCard(card entities.Card) (*entities.GatheringCard, error) {
	switch c := card.(type) {
	case *entities.GatheringCard:
		if c == nil {
			break
		}
		return c, nil
	case *entities.RecipeCard, *entities.EnhancementCard:
		return nil, errors.InvalidArgumentf("card %s is %s, not a gathering card", c.GetID(), c.GetType()).
			WithReason(errors.ReasonInvalidCardType)
	}
	return nil, errors.InvalidArgument("gathering card is required").
		WithReason(errors.ReasonInvalidCardType)
}
