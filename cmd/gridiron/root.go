package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "Gridiron resolves simulated football plays against a game state",
	Long: `Gridiron is the play-resolution engine of a football season simulator.
The run command simulates a full game with a seeded play generator; serve
exposes a running simulation's statistics and audit trail over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}
