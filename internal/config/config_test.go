package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxResults != 5 {
		t.Errorf("expected 5 results, got %d", cfg.MaxResults)
	}
	if cfg.MaxAlternatives != 3 {
		t.Errorf("expected 3 alternatives, got %d", cfg.MaxAlternatives)
	}
}

func TestFillDefaults(t *testing.T) {
	cfg := &Config{MaxResults: 10}
	cfg.fillDefaults()

	if cfg.MaxResults != 10 {
		t.Errorf("explicit value overwritten: %d", cfg.MaxResults)
	}
	if cfg.MaxAlternatives != 3 {
		t.Errorf("expected default alternatives, got %d", cfg.MaxAlternatives)
	}
	if cfg.Language != "en" {
		t.Errorf("expected default language, got %q", cfg.Language)
	}
}

func TestLoadMaterializesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxResults != 5 || cfg.Language != "en" {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// First run writes the file so the user has something to edit.
	if _, err := os.Stat(ConfigPath()); err != nil {
		t.Errorf("expected config file at %s: %v", ConfigPath(), err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := &Config{MaxResults: 7, MaxAlternatives: 2, Language: "ru"}
	if err := want.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.MaxResults != 7 || got.MaxAlternatives != 2 || got.Language != "ru" {
		t.Errorf("round trip changed config: %+v", got)
	}
}
