package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/GrowRoom_Go/internal/bootstrap"
	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/config"
	"github.com/osse101/GrowRoom_Go/internal/handler"
	"github.com/osse101/GrowRoom_Go/internal/persistence"
)

// reset deletes the saved game from the configured store. The next start
// begins a new game.
func main() {
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	if err := run(*yes); err != nil {
		fmt.Fprintf(os.Stderr, "reset: %v\n", err)
		os.Exit(1)
	}
}

func run(yes bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logFile, err := bootstrap.SetupLogger(cfg, handler.VersionString())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if !yes {
		fmt.Printf("Delete save %q from the %s store? [y/N] ", cfg.StoreKey, cfg.StoreBackend)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx := context.Background()
	cat, err := bootstrap.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	adapter := persistence.NewAdapter(store, persistence.NewCodec(cat), cfg.StoreKey, clock.NewRealClock())
	if _, err := adapter.Reset(ctx); err != nil {
		return err
	}

	slog.Info("Save deleted", "key", adapter.Key(), "backend", cfg.StoreBackend)
	fmt.Println("✅ Save reset complete!")
	return nil
}
