package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/stockroom"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	ledgerFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "An inventory ledger backed by a single structured file",
	Long: `Stockroom tracks named item quantities in memory and persists them
to a JSON (or YAML) file. Every mutation is validated, logged, and written
back atomically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&ledgerFile, "file", "f", stockroom.DefaultFile, "Ledger file path")
}
