package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.BaseURL != "https://restcountries.com/v3.1" {
		t.Errorf("unexpected base URL: %s", cfg.API.BaseURL)
	}
	if cfg.UI.MaxSelection != 3 {
		t.Errorf("unexpected max selection: %d", cfg.UI.MaxSelection)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.UI.MaxSelection = 5
	cfg.API.StaleMinutes = 120
	if err := cfg.saveTo(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := loadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.UI.MaxSelection != 5 {
		t.Errorf("unexpected max selection: %d", loaded.UI.MaxSelection)
	}
	if loaded.Stale() != 2*time.Hour {
		t.Errorf("unexpected staleness window: %v", loaded.Stale())
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.MaxSelection != 3 {
		t.Errorf("expected defaults for corrupt file, got %d", cfg.UI.MaxSelection)
	}
}

func TestPartialConfigGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ui": {"max_selection": 4}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.MaxSelection != 4 {
		t.Errorf("expected override to survive, got %d", cfg.UI.MaxSelection)
	}
	if cfg.API.BaseURL == "" {
		t.Error("expected base URL default to be filled in")
	}
	if cfg.SearchStale() != 5*time.Minute {
		t.Errorf("unexpected search staleness: %v", cfg.SearchStale())
	}
}

func TestDurationFallbacks(t *testing.T) {
	cfg := &Config{}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Timeout())
	}
	if cfg.Stale() != time.Hour {
		t.Errorf("unexpected staleness: %v", cfg.Stale())
	}
	if cfg.SearchStale() != 5*time.Minute {
		t.Errorf("unexpected search staleness: %v", cfg.SearchStale())
	}
}
