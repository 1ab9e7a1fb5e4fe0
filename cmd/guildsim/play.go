package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/simulator"
)

var (
	playSeed   uint64
	playSlot   string
	playResume bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game to the end with the scripted strategy",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "seed for a reproducible game (0 for random)")
	playCmd.Flags().StringVar(&playSlot, "slot", "", "save slot to autosave into (requires REDIS_ADDR)")
	playCmd.Flags().BoolVar(&playResume, "resume", false, "continue from the save in --slot")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if playSlot != "" && !cfg.UseRedis() {
		return errors.InvalidArgument("--slot requires REDIS_ADDR")
	}
	if playResume && playSlot == "" {
		return errors.InvalidArgument("--resume requires --slot")
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	gameID := "game"
	simCfg := &simulator.Config{
		Catalog:  catalog,
		Settings: cfg,
		Resume:   playResume,
	}
	if playSeed != 0 {
		simCfg.Seed = &playSeed
		gameID = fmt.Sprintf("game_%d", playSeed)
	}
	simCfg.GameID = gameID

	if cfg.UseRedis() {
		client, err := connectRedis(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		st, err := newStores(client)
		if err != nil {
			return err
		}
		simCfg.SessionRepo = st.sessions
		if playSlot != "" {
			simCfg.SaveRepo = st.saves
			simCfg.SlotID = playSlot
		}
	}

	publisher, err := newEventLog(gameID)
	if err != nil {
		return err
	}
	simCfg.Publisher = publisher

	game, err := simulator.NewGame(simCfg)
	if err != nil {
		return err
	}

	outcome, err := game.Run(ctx)
	if err != nil {
		return err
	}

	printOutcome(cmd, outcome)
	return nil
}

func printOutcome(cmd *cobra.Command, o *simulator.Outcome) {
	out := cmd.OutOrStdout()
	verdict := "GAME OVER"
	if o.Result.IsClear() {
		verdict = "GAME CLEAR"
	}
	fmt.Fprintf(out, "%s (%s)\n", verdict, o.Result.Reason)
	fmt.Fprintf(out, "  Final rank:       %s\n", o.Result.FinalRank)
	fmt.Fprintf(out, "  Days played:      %d\n", o.Result.TotalDays)
	fmt.Fprintf(out, "  Gold:             %d\n", o.State.Gold)
	fmt.Fprintf(out, "  Drafts:           %d\n", o.Drafts)
	fmt.Fprintf(out, "  Quests delivered: %d\n", o.QuestsDelivered)
}
