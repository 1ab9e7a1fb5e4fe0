package main

import (
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/simulator"
)

var (
	simGames       int
	simSeed        uint64
	simParallelism int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many independent games in parallel and summarize them",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simGames, "games", 100, "number of games to play")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "base seed; game i uses seed+i (0 for random)")
	simulateCmd.Flags().IntVar(&simParallelism, "parallel", 0, "games played at once (0 for GOMAXPROCS)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	summary, err := simulator.RunBatch(ctx, &simulator.BatchConfig{
		Catalog:     catalog,
		Settings:    cfg,
		Games:       simGames,
		BaseSeed:    simSeed,
		Parallelism: simParallelism,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Games:      %d\n", len(summary.Outcomes))
	fmt.Fprintf(out, "Clears:     %d (%.1f%%)\n", summary.Clears, summary.ClearRate()*100)
	fmt.Fprintf(out, "Game overs: %d\n", summary.GameOvers)
	fmt.Fprintln(out, "Final ranks:")

	ranks := make([]entities.GuildRank, 0, len(summary.FinalRanks))
	for rank := range summary.FinalRanks {
		ranks = append(ranks, rank)
	}
	slices.SortFunc(ranks, func(a, b entities.GuildRank) int { return b.Index() - a.Index() })
	for _, rank := range ranks {
		fmt.Fprintf(out, "  %s: %d\n", rank, summary.FinalRanks[rank])
	}
	return nil
}
