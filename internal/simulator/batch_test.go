package simulator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/config"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/simulator"
)

func batchConfig(t *testing.T, games int) *simulator.BatchConfig {
	t.Helper()

	catalog, err := masterdata.LoadDefault()
	require.NoError(t, err)

	return &simulator.BatchConfig{
		Catalog: catalog,
		Settings: &config.Config{
			Guild: config.GuildConfig{
				InitialDays:        8,
				InitialGold:        100,
				PromotionThreshold: 100,
				HandSize:           5,
			},
			Gathering: config.GatheringConfig{SessionTTL: time.Minute},
		},
		Games:       games,
		BaseSeed:    100,
		Parallelism: 4,
	}
}

func TestRunBatch(t *testing.T) {
	summary, err := simulator.RunBatch(context.Background(), batchConfig(t, 6))
	require.NoError(t, err)

	require.Len(t, summary.Outcomes, 6)
	assert.Equal(t, 6, summary.Clears+summary.GameOvers)

	ranked := 0
	for _, n := range summary.FinalRanks {
		ranked += n
	}
	assert.Equal(t, 6, ranked)
	assert.Equal(t, "game_1", summary.Outcomes[0].GameID)
	assert.InDelta(t, float64(summary.Clears)/6, summary.ClearRate(), 1e-9)
}

func TestRunBatchIsReproducible(t *testing.T) {
	first, err := simulator.RunBatch(context.Background(), batchConfig(t, 3))
	require.NoError(t, err)
	second, err := simulator.RunBatch(context.Background(), batchConfig(t, 3))
	require.NoError(t, err)

	assert.Equal(t, first.Outcomes, second.Outcomes)
}

func TestRunBatchValidation(t *testing.T) {
	_, err := simulator.RunBatch(context.Background(), &simulator.BatchConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Games: must be at least 1")

	_, err = simulator.RunBatch(context.Background(), nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRunBatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulator.RunBatch(ctx, batchConfig(t, 2))
	assert.Equal(t, errors.CodeAborted, errors.GetCode(err))
}
