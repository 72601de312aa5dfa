package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/stockroom"
	"github.com/spf13/cobra"
)

var (
	reportJSON  bool
	reportMatch string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print all items and quantities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := stockroom.New(ledgerFile,
			stockroom.WithLogger(slog.Default()),
			stockroom.WithReadOnly(true),
		)
		if err != nil {
			fatal("Failed to initialize stockroom", err)
		}

		ctx := context.Background()
		if err := service.Restore(ctx); err != nil {
			fatal("Failed to load inventory", err)
		}

		entries, err := service.Entries(ctx, reportMatch)
		if err != nil {
			fatal("Failed to list inventory", err)
		}

		if reportJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(entries) == 0 {
			fmt.Println("Inventory is empty.")
			return
		}

		fmt.Println("=== Inventory Report ===")
		for _, e := range entries {
			fmt.Printf("%s -> %d\n", e.Name, e.Quantity)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output in JSON format")
	reportCmd.Flags().StringVar(&reportMatch, "match", "", "Filter item names by glob pattern")
}
