package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/aretw0/stockroom"
	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove [name] [qty]",
	Short: "Remove a quantity of an item from the ledger",
	Long: `Remove decreases the stock of the named item by the given quantity.
Removing the exact current stock deletes the item entirely. Removing more
than is in stock fails and leaves the ledger unchanged.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("Quantity must be an integer", err)
		}

		service, err := stockroom.New(ledgerFile,
			stockroom.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize stockroom", err)
		}

		ctx := context.Background()
		if err := service.Restore(ctx); err != nil {
			fatal("Failed to load inventory", err)
		}

		if err := service.RemoveItem(ctx, name, qty); err != nil {
			// User friendly error handling
			switch {
			case errors.Is(err, stockroom.ErrNotFound):
				fmt.Fprintf(os.Stderr, "Error: item %q is not in stock\n", name)
			case errors.Is(err, stockroom.ErrInsufficientStock):
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			default:
				fmt.Fprintf(os.Stderr, "Error: failed to remove item: %v\n", err)
			}
			os.Exit(1)
		}

		if err := service.Persist(ctx); err != nil {
			fatal("Failed to save inventory", err)
		}

		fmt.Printf("Removed %d of %s\n", qty, name)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
