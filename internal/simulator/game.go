// Package simulator wires the guild services into one headless playthrough
// and drives it with a scripted strategy
package simulator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/config"
	"github.com/KirkDiggler/guildcraft/internal/engine/quality"
	"github.com/KirkDiggler/guildcraft/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/notifications"
	"github.com/KirkDiggler/guildcraft/internal/orchestrators/gathering"
	"github.com/KirkDiggler/guildcraft/internal/orchestrators/phase"
	"github.com/KirkDiggler/guildcraft/internal/pkg/clock"
	"github.com/KirkDiggler/guildcraft/internal/pkg/idgen"
	draftsession "github.com/KirkDiggler/guildcraft/internal/repositories/draft_session"
	gamesave "github.com/KirkDiggler/guildcraft/internal/repositories/game_save"
	"github.com/KirkDiggler/guildcraft/internal/services/hand"
	"github.com/KirkDiggler/guildcraft/internal/services/quest"
)

// Config holds everything one playthrough needs
type Config struct {
	GameID   string
	Catalog  *masterdata.Catalog
	Settings *config.Config
	// Seed makes the playthrough reproducible when set
	Seed *uint64

	// SessionRepo defaults to an in-memory repository
	SessionRepo draftsession.Repository
	// SaveRepo enables autosave into SlotID after every day
	SaveRepo gamesave.Repository
	SlotID   string
	// Resume continues from the save in SlotID instead of starting fresh
	Resume bool

	Publisher notifications.Publisher
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameID == "" {
		vb.RequiredField("GameID")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.SaveRepo != nil && c.SlotID == "" {
		vb.Field("SlotID", "is required when saving")
	}
	if c.Resume && c.SaveRepo == nil {
		vb.Field("SaveRepo", "is required to resume")
	}

	return vb.Build()
}

// Outcome summarizes a finished playthrough
type Outcome struct {
	GameID          string
	Result          entities.GameResult
	State           entities.GameState
	Drafts          int
	QuestsDelivered int
}

// Game is one wired playthrough. It is driven from a single goroutine.
type Game struct {
	id       string
	catalog  *masterdata.Catalog
	saveRepo gamesave.Repository
	slotID   string
	resume   bool

	phase     phase.Service
	gathering gathering.Service
	hand      hand.Service
	quests    quest.Service

	inventory []entities.MaterialInstance
	drafts    int
	delivered int
}

// NewGame wires the services for one playthrough
func NewGame(cfg *Config) (*Game, error) {
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
	sessionRepo := cfg.SessionRepo
	if sessionRepo == nil {
		sessionRepo = draftsession.NewInMemory()
	}

	roller := rpgtoolkit.NewRoller(cfg.Seed)
	var handSeed *uint32
	cardIDs := idgen.Generator(idgen.NewUUID("card"))
	materialIDs := idgen.Generator(idgen.NewUUID("mat"))
	questIDs := idgen.Generator(idgen.NewUUID("quest"))
	if seeded, ok := roller.(*rpgtoolkit.SeededRoller); ok {
		s := seeded.Uint32()
		handSeed = &s
		cardIDs = idgen.NewSequential("card")
		materialIDs = idgen.NewSequential("mat")
		questIDs = idgen.NewSequential("quest")
	}

	qualityEngine, err := quality.NewEngine(&quality.Config{
		MasterData:  cfg.Catalog,
		DiceRoller:  roller,
		IDGenerator: materialIDs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create quality engine")
	}

	gatheringSvc, err := gathering.NewOrchestrator(&gathering.Config{
		MasterData:            cfg.Catalog,
		QualityEngine:         qualityEngine,
		DiceRoller:            roller,
		SessionRepo:           sessionRepo,
		IDGenerator:           idgen.NewUUID("draft"),
		Publisher:             publisher,
		Clock:                 cfg.Clock,
		LegacyRoundBonusNames: cfg.Settings.Gathering.LegacyRoundBonusNames,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gathering orchestrator")
	}

	handSvc, err := hand.NewService(&hand.Config{
		MasterData:  cfg.Catalog,
		IDGenerator: cardIDs,
		CardIDs:     cfg.Catalog.StarterDeck(),
		HandSize:    cfg.Settings.Guild.HandSize,
		Seed:        handSeed,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create hand service")
	}

	questSvc, err := quest.NewService(&quest.Config{
		MasterData:  cfg.Catalog,
		DiceRoller:  roller,
		IDGenerator: questIDs,
		MaterialIDs: cfg.Catalog.ListMaterialIDs(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create quest service")
	}

	phaseSvc, err := phase.NewOrchestrator(&phase.Config{
		QuestService:       questSvc,
		HandService:        handSvc,
		Guard:              gatheringSvc,
		Publisher:          publisher,
		Clock:              cfg.Clock,
		InitialDays:        cfg.Settings.Guild.InitialDays,
		InitialGold:        cfg.Settings.Guild.InitialGold,
		PromotionThreshold: cfg.Settings.Guild.PromotionThreshold,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create phase orchestrator")
	}

	return &Game{
		id:        cfg.GameID,
		catalog:   cfg.Catalog,
		saveRepo:  cfg.SaveRepo,
		slotID:    cfg.SlotID,
		resume:    cfg.Resume,
		phase:     phaseSvc,
		gathering: gatheringSvc,
		hand:      handSvc,
		quests:    questSvc,
	}, nil
}

// Run plays until the game is won or lost
func (g *Game) Run(ctx context.Context) (*Outcome, error) {
	if err := g.begin(ctx); err != nil {
		return nil, err
	}

	// every day costs at least one calendar day, so this bounds the loop
	maxDays := g.phase.GetState().RemainingDays + 1
	for day := 0; g.phase.Result() == nil; day++ {
		if day > maxDays {
			return nil, errors.Internalf("game %s did not finish within %d days", g.id, maxDays)
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeAborted, "simulation cancelled")
		}
		if err := g.playDay(ctx); err != nil {
			return nil, errors.Wrapf(err, "day %d failed", g.phase.GetState().CurrentDay)
		}
		if err := g.autosave(ctx); err != nil {
			return nil, err
		}
	}

	result := g.phase.Result()
	outcome := &Outcome{
		GameID:          g.id,
		Result:          *result,
		State:           g.phase.GetState(),
		Drafts:          g.drafts,
		QuestsDelivered: g.delivered,
	}

	slog.Info("Playthrough finished",
		"game_id", g.id,
		"reason", result.Reason,
		"final_rank", result.FinalRank,
		"total_days", result.TotalDays,
		"quests_delivered", g.delivered)

	return outcome, nil
}

func (g *Game) begin(ctx context.Context) error {
	if g.resume {
		out, err := g.saveRepo.Load(ctx, gamesave.LoadInput{SlotID: g.slotID})
		if err != nil {
			return errors.Wrapf(err, "failed to load slot %s", g.slotID)
		}
		if err := g.phase.ContinueGame(ctx, &phase.ContinueGameInput{SaveData: out.Data}); err != nil {
			return err
		}
		if err := g.phase.StartDay(ctx); err != nil {
			return err
		}
	} else if err := g.phase.StartNewGame(ctx); err != nil {
		return err
	}

	if _, err := g.hand.DrawHand(ctx); err != nil {
		return errors.Wrap(err, "failed to draw opening hand")
	}
	return nil
}

func (g *Game) autosave(ctx context.Context) error {
	if g.saveRepo == nil {
		return nil
	}
	if _, err := g.saveRepo.Save(ctx, gamesave.SaveInput{
		SlotID: g.slotID,
		Data:   g.phase.Snapshot(),
	}); err != nil {
		return errors.Wrapf(err, "failed to save slot %s", g.slotID)
	}
	return nil
}
