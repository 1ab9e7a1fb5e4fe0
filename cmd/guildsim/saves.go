package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/guildcraft/internal/errors"
	gamesave "github.com/KirkDiggler/guildcraft/internal/repositories/game_save"
)

var repairFix bool

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Inspect and maintain save slots in Redis",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List occupied save slots",
	RunE: withSaves(func(cmd *cobra.Command, repo gamesave.Repository, _ []string) error {
		slots, err := repo.ListSlots(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, slotID := range slots.SlotIDs {
			loaded, err := repo.Load(cmd.Context(), gamesave.LoadInput{SlotID: slotID})
			if err != nil {
				fmt.Fprintf(out, "%s\tunreadable: %v\n", slotID, err)
				continue
			}
			state := loaded.Data.GameState
			fmt.Fprintf(out, "%s\tday %d\trank %s\tgold %d\tsaved %s\n",
				slotID, state.CurrentDay, state.CurrentRank, state.Gold,
				loaded.Data.SavedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}),
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete [slot]",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE: withSaves(func(cmd *cobra.Command, repo gamesave.Repository, args []string) error {
		if _, err := repo.Delete(cmd.Context(), gamesave.DeleteInput{SlotID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted slot %s\n", args[0])
		return nil
	}),
}

var savesRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find save slots that no longer decode, and delete them with --fix",
	RunE: withSaves(func(cmd *cobra.Command, repo gamesave.Repository, _ []string) error {
		result, err := gamesave.Repair(cmd.Context(), repo, gamesave.RepairInput{Fix: repairFix})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checked %d slots, %d unreadable\n", result.Checked, len(result.Corrupted))
		for _, slotID := range result.Corrupted {
			fmt.Fprintf(out, "  %s\n", slotID)
		}
		if len(result.Corrupted) > 0 && !repairFix {
			fmt.Fprintln(out, "Run again with --fix to delete them")
		}
		return nil
	}),
}

type savesFunc func(cmd *cobra.Command, repo gamesave.Repository, args []string) error

func withSaves(fn savesFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !cfg.UseRedis() {
			return errors.InvalidArgument("save slots require REDIS_ADDR")
		}

		client, err := connectRedis(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		st, err := newStores(client)
		if err != nil {
			return err
		}
		return fn(cmd, st.saves, args)
	}
}

func init() {
	savesRepairCmd.Flags().BoolVar(&repairFix, "fix", false, "delete unreadable slots")
	savesCmd.AddCommand(savesListCmd, savesDeleteCmd, savesRepairCmd)
}
