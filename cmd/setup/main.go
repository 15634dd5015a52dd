package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GrowRoom_Go/internal/bootstrap"
	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/config"
	"github.com/osse101/GrowRoom_Go/internal/database"
	"github.com/osse101/GrowRoom_Go/internal/storage"
)

// setup prepares the configured store (creating the Postgres database and
// running migrations when needed) and can write the built-in catalog out as
// an editable YAML file.
func main() {
	writeCatalog := flag.String("write-catalog", "", "write the built-in catalog to this path if it does not exist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx := context.Background()

	if cfg.StoreBackend == storage.BackendPostgres {
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	if err := storage.CheckHealth(ctx, store); err != nil {
		store.Close()
		log.Fatalf("Store is not healthy: %v", err)
	}
	store.Close()
	fmt.Printf("Store ready (%s).\n", cfg.StoreBackend)

	if *writeCatalog != "" {
		if err := writeDefaultCatalog(*writeCatalog); err != nil {
			log.Fatalf("Failed to write catalog: %v", err)
		}
	}
}

// ensureDatabase creates the configured database through the maintenance
// 'postgres' database when it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, database.ConnString(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, "postgres"))
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}

func writeDefaultCatalog(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Catalog %s already exists, leaving it alone.\n", path)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	data, err := catalog.EncodeYAML(catalog.Default())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), bootstrap.DirPermission); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, bootstrap.FilePermission); err != nil {
		return err
	}
	fmt.Printf("Wrote built-in catalog to %s.\n", path)
	return nil
}
