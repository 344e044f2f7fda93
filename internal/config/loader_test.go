package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bubble-arena/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded default can be found.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML ArenaConfig
	if err := yaml.Unmarshal(defaultArenaYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultArenaConfig() {
		t.Errorf("embedded = %+v\nhardcoded = %+v", fromYAML, DefaultArenaConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultArenaConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
	if cfg.Runtime() != core.DefaultConfig() {
		t.Errorf("Runtime() = %+v, expected %+v", cfg.Runtime(), core.DefaultConfig())
	}
}

func TestLoadCustomPathFillsDefaults(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "time:\n  play_seconds: 60\nfiles:\n  enemy: foes.csv\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Time.PlaySeconds != 60 {
		t.Errorf("PlaySeconds = %d, expected 60", cfg.Time.PlaySeconds)
	}
	if cfg.Time.TicksPerSecond != 30 {
		t.Errorf("TicksPerSecond = %d, expected 30", cfg.Time.TicksPerSecond)
	}
	if cfg.Files.Enemy != "foes.csv" || cfg.Files.Platform != "platform.txt" {
		t.Errorf("Files = %+v", cfg.Files)
	}
	if cfg.Library.Name != "builtin" {
		t.Errorf("Library.Name = %q, expected builtin", cfg.Library.Name)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for invalid YAML")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := isolate(t)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "scoring:\n  bonus_points: 10\n"
	if err := os.WriteFile(filepath.Join(dir, "configs", "arena.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.BonusPoints != 10 {
		t.Errorf("BonusPoints = %d, expected 10", cfg.Scoring.BonusPoints)
	}
	if cfg.Tuning().BonusValue != 10 {
		t.Errorf("Tuning().BonusValue = %d, expected 10", cfg.Tuning().BonusValue)
	}
}
