package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("debug: true\nmatcher:\n  match_threshold: 0.8\n")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
	if cfg.Matcher.MatchThreshold != 0.8 {
		t.Errorf("match_threshold = %v, want overridden 0.8", cfg.Matcher.MatchThreshold)
	}
	if cfg.Matcher.HighConfidence != 1.5 {
		t.Errorf("high_confidence = %v, want default 1.5", cfg.Matcher.HighConfidence)
	}
	if cfg.Parser.DefaultWindowDays != 90 {
		t.Errorf("default_window_days = %v, want default 90", cfg.Parser.DefaultWindowDays)
	}
	if cfg.Validator.Time.MinDays != 7 {
		t.Errorf("min_days = %v, want default 7", cfg.Validator.Time.MinDays)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("matcher: ["), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Matcher.MatchThreshold = 0.75
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Matcher.MatchThreshold != 0.75 {
		t.Errorf("match_threshold = %v, want 0.75", loaded.Matcher.MatchThreshold)
	}
}
