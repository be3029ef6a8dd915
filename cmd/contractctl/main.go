// Command contractctl runs schema migrations and offline contract tooling.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "contractctl",
	Short:         "Operational tooling for the dealer contract service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env", "error", err)
	}

	rootCmd.AddCommand(newMigrateCmd(), newRenderCmd(), newPurgeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
