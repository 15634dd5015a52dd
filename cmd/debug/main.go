package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/osse101/GrowRoom_Go/internal/bootstrap"
	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/config"
	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/persistence"
)

// debug dumps the saved game from the configured store
func main() {
	raw := flag.Bool("raw", false, "print the stored blob without decoding it")
	deadLetters := flag.Bool("deadletters", false, "list events in the dead-letter log instead of the save")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *deadLetters {
		printDeadLetters(cfg.DeadLetterPath)
		return
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	if *raw {
		data, err := store.Load(ctx, cfg.StoreKey)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", cfg.StoreKey, err)
		}
		os.Stdout.Write(data)
		fmt.Println()
		return
	}

	cat, err := bootstrap.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	adapter := persistence.NewAdapter(store, persistence.NewCodec(cat), cfg.StoreKey, clock.NewRealClock())
	state, err := adapter.Load(ctx)
	if err != nil {
		log.Printf("Save is unusable, showing a new game instead: %v", err)
	}

	fmt.Println("--- Wallet ---")
	fmt.Printf("Nugs: %s, Buds: %s\n", humanize.Comma(int64(state.Nugs)), humanize.Comma(int64(state.Buds)))

	fmt.Println("\n--- Slots ---")
	for i, p := range state.Slots {
		if p == nil {
			fmt.Printf("%d: empty\n", i)
			continue
		}
		fmt.Printf("%d: %s (%s) phase %d, %.0fs elapsed\n", i, p.StrainID, p.Modifiers.SoilType, p.PhaseIndex, p.ElapsedInPhase)
	}

	fmt.Println("\n--- Full state ---")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		log.Fatalf("Failed to encode state: %v", err)
	}
}

func printDeadLetters(path string) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		fmt.Println("No dead letters")
		return
	}
	if err != nil {
		log.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	entries, err := event.ReadDeadLetters(f)
	if err != nil {
		log.Printf("Stopped early: %v", err)
	}
	for _, e := range entries {
		fmt.Printf("%s  %-24s attempts=%d  %s\n", humanize.Time(e.Timestamp), e.Event.Type, e.Attempts, e.LastError)
	}
	fmt.Printf("%s dead letter(s) in %s\n", humanize.Comma(int64(len(entries))), path)
}
