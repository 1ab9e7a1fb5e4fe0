package simulator

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/config"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
)

// BatchConfig describes a run of independent games
type BatchConfig struct {
	Catalog  *masterdata.Catalog
	Settings *config.Config
	Games    int
	// BaseSeed seeds game i with BaseSeed+i; zero leaves games unseeded
	BaseSeed uint64
	// Parallelism defaults to GOMAXPROCS
	Parallelism int
}

// Validate ensures all required dependencies are provided
func (c *BatchConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.Games < 1 {
		vb.Field("Games", "must be at least 1")
	}
	if c.Parallelism < 0 {
		vb.Field("Parallelism", "must not be negative")
	}

	return vb.Build()
}

// BatchSummary aggregates a batch. Outcomes are in game order.
type BatchSummary struct {
	Outcomes   []*Outcome
	Clears     int
	GameOvers  int
	FinalRanks map[entities.GuildRank]int
}

// ClearRate is the share of games won
func (b *BatchSummary) ClearRate() float64 {
	if len(b.Outcomes) == 0 {
		return 0
	}
	return float64(b.Clears) / float64(len(b.Outcomes))
}

// RunBatch plays every game of the batch concurrently. Each game gets its
// own services and in-memory draft storage. The first failure cancels the
// rest.
func RunBatch(ctx context.Context, cfg *BatchConfig) (*BatchSummary, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limit := cfg.Parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]*Outcome, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range cfg.Games {
		g.Go(func() error {
			gameCfg := &Config{
				GameID:   fmt.Sprintf("game_%d", i+1),
				Catalog:  cfg.Catalog,
				Settings: cfg.Settings,
			}
			if cfg.BaseSeed != 0 {
				seed := cfg.BaseSeed + uint64(i)
				gameCfg.Seed = &seed
			}

			game, err := NewGame(gameCfg)
			if err != nil {
				return err
			}
			outcome, err := game.Run(gctx)
			if err != nil {
				return errors.Wrapf(err, "game %d failed", i+1)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &BatchSummary{
		Outcomes:   outcomes,
		FinalRanks: make(map[entities.GuildRank]int),
	}
	for _, o := range outcomes {
		if o.Result.IsClear() {
			summary.Clears++
		} else {
			summary.GameOvers++
		}
		summary.FinalRanks[o.Result.FinalRank]++
	}
	return summary, nil
}
