package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nikhitha35/eventcal/internal/config"
	"github.com/Nikhitha35/eventcal/internal/db"
	"github.com/Nikhitha35/eventcal/internal/store"
	"github.com/Nikhitha35/eventcal/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	return ui.NewApp(st, cfg).Execute()
}

// openStore opens the SQLite-backed store. When the database cannot be
// opened the calendar still starts, in-memory only, with a warning.
func openStore(cfg *config.Config) (*store.Store, error) {
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; changes will not be saved\n", err)
		st, _ := store.Open(ctx, nil)
		return st, nil
	}

	blob, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; changes will not be saved\n", err)
		st, _ := store.Open(ctx, nil)
		return st, nil
	}

	st, err := store.Open(ctx, blob)
	if err != nil {
		if errors.Is(err, store.ErrPersistenceUnavailable) {
			fmt.Fprintf(os.Stderr, "warning: %v; changes will not be saved\n", err)
			return st, nil
		}
		return nil, err
	}
	return st, nil
}
