package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/config"
	"github.com/osse101/GrowRoom_Go/internal/storage"
)

// OpenStore creates whatever directory the backend writes into, then opens it
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	opts := cfg.StoreOptions()

	var dir string
	switch opts.Backend {
	case storage.BackendFile:
		dir = opts.Path
	case storage.BackendSQLite:
		dir = filepath.Dir(opts.Path)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStoreDir, err)
		}
	}

	store, err := storage.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	slog.Info(LogMsgStoreOpened, "backend", opts.Backend, "path", opts.Path, "cache_size", opts.CacheSize)
	return store, nil
}

// LoadCatalog reads the catalog at path. An empty path tries the default
// location and falls back to the built-in catalog when nothing is there.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	explicit := path != ""
	if !explicit {
		path = config.ConfigPathCatalog
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			slog.Info(LogMsgCatalogDefault, "path", path)
			return catalog.Default(), nil
		}
	}

	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	c, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", path, "strains", len(c.StrainIDs()), "phases", c.PhaseCount())
	return c, nil
}
