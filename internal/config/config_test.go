package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	// The test binary runs in the package directory, so no ./configs override exists.
	want := DefaultSnakeConfig()
	if home := UserConfigPath(ConfigFile); home != "" {
		if _, err := os.Stat(home); err == nil {
			t.Skip("user config present, cannot compare against defaults")
		}
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded config = %+v, expected %+v", cfg, want)
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("hazard:\n  good_ms: 2000\ntiming:\n  base_tick_ms: 120\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%s): %v", path, err)
	}
	if cfg.Hazard.GoodMs != 2000 {
		t.Errorf("GoodMs = %d, expected 2000", cfg.Hazard.GoodMs)
	}
	if cfg.Timing.BaseTickMs != 120 {
		t.Errorf("BaseTickMs = %d, expected 120", cfg.Timing.BaseTickMs)
	}
	// Untouched fields keep defaults.
	if cfg.Hazard.BombMs != DefaultSnakeConfig().Hazard.BombMs {
		t.Errorf("BombMs = %d, expected default", cfg.Hazard.BombMs)
	}
	if cfg.Grid.Rows != 20 || cfg.Grid.Cols != 80 {
		t.Errorf("grid = %dx%d, expected 20x80", cfg.Grid.Rows, cfg.Grid.Cols)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  min_tick_ms: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(invalid); err == nil {
		t.Error("expected validation error for min tick above base tick")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"tiny grid", func(c *SnakeConfig) { c.Grid.Rows = 2 }, false},
		{"zero base tick", func(c *SnakeConfig) { c.Timing.BaseTickMs = 0 }, false},
		{"negative level step", func(c *SnakeConfig) { c.Timing.LevelStepMs = -1 }, false},
		{"no chomp frames", func(c *SnakeConfig) { c.Food.ChompFrames = 0 }, false},
		{"snake wider than grid", func(c *SnakeConfig) { c.Food.StartLength = 80 }, false},
		{"empty group", func(c *SnakeConfig) { c.Hazard.GroupSize = 0 }, false},
		{"idle below floor", func(c *SnakeConfig) { c.Idle.BaseTicks = 10 }, false},
		{"loud", func(c *SnakeConfig) { c.Sound.Volume = 1.5 }, false},
		{"bad backend", func(c *SnakeConfig) { c.Sound.Backend = "midi" }, false},
		{"system backend", func(c *SnakeConfig) { c.Sound.Backend = "system" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestIdleThreshold(t *testing.T) {
	idle := IdleConfig{BaseTicks: 120, PerLevel: 10, MinTicks: 40}
	tests := []struct {
		level    int
		expected int
	}{
		{1, 120},
		{2, 110},
		{5, 80},
		{9, 40},
		{20, 40},
	}
	for _, tt := range tests {
		if got := idle.Threshold(tt.level); got != tt.expected {
			t.Errorf("Threshold(%d) = %d, expected %d", tt.level, got, tt.expected)
		}
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if got := cfg.Timing.BaseTick(); got != 100*time.Millisecond {
		t.Errorf("BaseTick = %v, expected 100ms", got)
	}
	if got := cfg.Timing.MinTick(); got != 30*time.Millisecond {
		t.Errorf("MinTick = %v, expected 30ms", got)
	}
	if got := cfg.Hazard.GoodWindow() + cfg.Hazard.BombWindow(); got != 14*time.Second {
		t.Errorf("hazard lifetime = %v, expected 14s", got)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPreset) {
				t.Errorf("ParsePreset(%q) error = %v, expected ErrUnknownPreset", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, %v, expected %q", tt.in, got, err, tt.expected)
		}
	}
}

func TestApplySnakePreset(t *testing.T) {
	base := DefaultSnakeConfig()

	normal := DefaultSnakeConfig()
	ApplySnakePreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultSnakeConfig()
	ApplySnakePreset(&easy, DifficultyEasy)
	if easy.Hazard.GoodMs <= base.Hazard.GoodMs {
		t.Errorf("easy GoodMs = %d, expected more than %d", easy.Hazard.GoodMs, base.Hazard.GoodMs)
	}
	if easy.Timing.BaseTickMs <= base.Timing.BaseTickMs {
		t.Errorf("easy BaseTickMs = %d, expected slower than %d", easy.Timing.BaseTickMs, base.Timing.BaseTickMs)
	}

	hard := DefaultSnakeConfig()
	ApplySnakePreset(&hard, DifficultyHard)
	if hard.Hazard.BombMs >= base.Hazard.BombMs {
		t.Errorf("hard BombMs = %d, expected less than %d", hard.Hazard.BombMs, base.Hazard.BombMs)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	fixed := DefaultSnakeConfig()
	ApplySnakePreset(&fixed, DifficultyFixed)
	if fixed.Timing.LevelStepMs != 0 || fixed.Timing.GrowthStepMs != 0 {
		t.Errorf("fixed preset steps = %d/%d, expected 0/0", fixed.Timing.LevelStepMs, fixed.Timing.GrowthStepMs)
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Rows = 15
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if loaded.Grid.Rows != 15 {
		t.Errorf("Rows = %d, expected 15", loaded.Grid.Rows)
	}
}
