package stockroom_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/stockroom"
)

// Example_basic demonstrates how to restore a ledger, record some stock
// movements, and check what is running low.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "stockroom-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := stockroom.New(filepath.Join(tmpDir, "inventory.json"),
		stockroom.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Restore persisted state (a missing file starts empty)
	if err := svc.Restore(ctx); err != nil {
		log.Fatal(err)
	}

	// 2. Record some stock movements
	if err := svc.AddItem(ctx, "apple", 10, nil); err != nil {
		log.Fatal(err)
	}
	if err := svc.AddItem(ctx, "banana", 3, nil); err != nil {
		log.Fatal(err)
	}
	if err := svc.RemoveItem(ctx, "banana", 1); err != nil {
		log.Fatal(err)
	}

	// 3. Query and report
	qty, err := svc.Quantity(ctx, "apple")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("apple -> %d\n", qty)

	low, err := svc.LowStock(ctx, stockroom.DefaultLowThreshold)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Low items:", low)

	// 4. Persist before shutdown
	if err := svc.Persist(ctx); err != nil {
		log.Fatal(err)
	}

	// Output:
	// apple -> 10
	// Low items: [banana]
}
