package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/stockroom"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Print the current quantity of an item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

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

		qty, err := service.Quantity(ctx, name)
		if err != nil {
			fatal("Failed to get quantity", err)
		}

		fmt.Println(qty)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
