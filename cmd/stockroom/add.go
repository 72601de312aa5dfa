package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/aretw0/stockroom"
	"github.com/spf13/cobra"
)

var addQuiet bool

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [name] [qty]",
	Short: "Add a quantity of an item to the ledger",
	Long: `Add increases the stock of the named item by the given quantity.
Adding zero is an informational no-op. The journal of what changed is printed
unless --quiet is set.`,
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

		var journal stockroom.Journal
		if err := service.AddItem(ctx, name, qty, &journal); err != nil {
			fatal("Failed to add item", err)
		}

		if err := service.Persist(ctx); err != nil {
			fatal("Failed to save inventory", err)
		}

		if !addQuiet {
			for _, line := range journal {
				fmt.Println(line)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVarP(&addQuiet, "quiet", "q", false, "Suppress journal output")
}
