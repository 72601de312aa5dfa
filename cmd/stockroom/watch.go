package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/stockroom"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the ledger file and re-print the report on external changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := stockroom.New(ledgerFile,
			stockroom.WithLogger(slog.Default()),
			stockroom.WithReadOnly(true),
		)
		if err != nil {
			fatal("Failed to initialize stockroom", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := service.Restore(ctx); err != nil {
			fatal("Failed to load inventory", err)
		}

		events, err := service.Watch(ctx)
		if err != nil {
			fatal("Failed to watch ledger file", err)
		}

		fmt.Printf("Watching %s (Ctrl+C to stop)\n", ledgerFile)
		for event := range events {
			fmt.Printf("[%s] %s\n", time.Unix(event.Timestamp, 0).Format(time.RFC3339), event)

			if err := service.Restore(ctx); err != nil {
				fmt.Printf("Reload failed: %v\n", err)
				continue
			}
			entries, err := service.Entries(ctx, "")
			if err != nil {
				fmt.Printf("Report failed: %v\n", err)
				continue
			}
			if len(entries) == 0 {
				fmt.Println("Inventory is empty.")
				continue
			}
			for _, e := range entries {
				fmt.Printf("%s -> %d\n", e.Name, e.Quantity)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
