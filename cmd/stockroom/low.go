package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/stockroom"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	lowThreshold int
	lowMatch     string
)

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items whose quantity is below a threshold",
	Long: `Low lists every item whose quantity is strictly below the threshold,
sorted by name. A glob pattern can narrow the result to matching item names.`,
	Args: cobra.NoArgs,
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

		names, err := service.LowStock(ctx, lowThreshold)
		if err != nil {
			fatal("Failed to check low items", err)
		}

		// Filter
		if lowMatch != "" {
			var filtered []string
			for _, name := range names {
				ok, err := doublestar.Match(lowMatch, name)
				if err != nil {
					fatal("Invalid match pattern", err)
				}
				if ok {
					filtered = append(filtered, name)
				}
			}
			names = filtered
		}

		if len(names) == 0 {
			fmt.Printf("No items below %d.\n", lowThreshold)
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(lowCmd)
	lowCmd.Flags().IntVarP(&lowThreshold, "threshold", "t", stockroom.DefaultLowThreshold, "Low stock threshold")
	lowCmd.Flags().StringVar(&lowMatch, "match", "", "Filter item names by glob pattern")
}
