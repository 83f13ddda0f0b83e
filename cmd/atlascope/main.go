// Atlascope - a country explorer for the terminal.
//
// Layout:
//   internal/restcountries - REST Countries v3.1 client
//   internal/cache         - staleness-aware query cache
//   internal/selection     - bounded comparison selection
//   internal/ui            - Bubble Tea dashboard
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"atlascope/internal/cache"
	"atlascope/internal/config"
	"atlascope/internal/country"
	"atlascope/internal/logging"
	"atlascope/internal/refresh"
	"atlascope/internal/restcountries"
	"atlascope/internal/selection"
	"atlascope/internal/store"
	"atlascope/internal/ui"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Atlascope starting")

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("Failed to create data directory: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "atlascope.db")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fatal("Failed to open store: %v", err)
	}
	defer st.Close()
	logging.Info("Store opened", "path", dbPath)

	client := restcountries.New(cfg.API.BaseURL, cfg.Timeout())
	queries := cache.New(client, cfg.Stale(), cfg.SearchStale())

	sel := selection.NewStore(cfg.UI.MaxSelection, st)
	logging.Info("Selection restored", "count", sel.Count())

	app := ui.New(queries, st, sel)
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Re-warm the cache on the staleness cadence so the dashboard stays
	// fresh without the user asking.
	ctx, cancel := context.WithCancel(context.Background())
	coord := refresh.New(queries, st, country.Regions(), cfg.Stale())
	coord.Start(ctx, p)

	if _, err := p.Run(); err != nil {
		cancel()
		coord.Wait()
		logging.Error("Application error", "error", err)
		fatal("Error: %v", err)
	}

	cancel()
	coord.Wait()
	logging.Info("Atlascope exiting normally")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
