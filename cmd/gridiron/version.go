package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gridiron "github.com/gridironlabs/gridiron"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gridiron",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridiron version %s\n", strings.TrimSpace(gridiron.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
