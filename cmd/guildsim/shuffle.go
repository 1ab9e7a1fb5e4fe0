package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/guildcraft/internal/engine/deck"
)

var shuffleSeed uint32

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [cards...]",
	Short: "Shuffle the given cards, reproducibly when --seed is set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var shuffled []string
		if cmd.Flags().Changed("seed") {
			shuffled = deck.ShuffleSeeded(args, shuffleSeed)
		} else {
			shuffled = deck.Shuffle(args)
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(shuffled, " "))
		return nil
	},
}

func init() {
	shuffleCmd.Flags().Uint32Var(&shuffleSeed, "seed", 0, "seed for a reproducible order")
}
