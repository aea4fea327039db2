package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emirpasha/sokak-snake/internal/game"
)

func TestDefaultMatchesVariantTunables(t *testing.T) {
	// Applying the default config onto the street variant must change
	// nothing: both encode the same constants.
	base := game.StreetTunables()
	tun := game.StreetTunables()
	Default().Apply(&tun)

	if tun != base {
		t.Errorf("default config altered the variant tunables:\n got %+v\nwant %+v", tun, base)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 12 {
		t.Errorf("grid = %dx%d, expected 20x12", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Traffic.RedChance != 0.55 {
		t.Errorf("red_chance = %v, expected 0.55", cfg.Traffic.RedChance)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	data := []byte("grid:\n  width: 30\nspeed:\n  base_ms: 200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	tun := game.StreetTunables()
	cfg.Apply(&tun)

	if tun.GridW != 30 {
		t.Errorf("GridW = %d, expected 30 from custom config", tun.GridW)
	}
	if tun.BaseStepMs != 200 {
		t.Errorf("BaseStepMs = %d, expected 200 from custom config", tun.BaseStepMs)
	}
	// Unset fields keep the variant defaults.
	if tun.GridH != 12 {
		t.Errorf("GridH = %d, expected untouched default 12", tun.GridH)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for an explicit path that does not exist")
	}
}

func TestApplyIgnoresZeroValues(t *testing.T) {
	tun := game.ClassicTunables()
	base := tun

	var empty GameConfig
	empty.Apply(&tun)

	if tun != base {
		t.Errorf("empty config altered tunables:\n got %+v\nwant %+v", tun, base)
	}
}
