// Package main is the entry point for the headless guild simulator
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/guildcraft/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "guildsim",
	Short: "Headless alchemist guild simulator",
	Long: `guildsim plays the guild simulation without a presentation layer: single
games, batches of games for balance checks, and save slot maintenance.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := godotenv.Load(); err == nil {
			slog.Debug("Loaded .env file")
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := cfg.SlogLevel()
		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
		if strings.EqualFold(cfg.LogFormat, "json") {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		}
		slog.SetDefault(slog.New(handler))

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(savesCmd)
}
