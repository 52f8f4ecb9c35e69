package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseChoir(defaultChoirYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML invalid: %v", err)
	}

	def := DefaultChoirConfig()
	if cfg.Timing != def.Timing {
		t.Errorf("timing = %+v, want %+v", cfg.Timing, def.Timing)
	}
	if cfg.Gameplay != def.Gameplay {
		t.Errorf("gameplay = %+v, want %+v", cfg.Gameplay, def.Gameplay)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty = %+v, want %+v", cfg.Difficulty, def.Difficulty)
	}
	if strings.Join(cfg.Keys.Replay, ",") != " " {
		t.Errorf("replay keys = %q, want space", cfg.Keys.Replay)
	}
}

func TestLoadChoirCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choir.yaml")
	data := "timing:\n  reveal_interval: 2s\ngameplay:\n  max_mistakes: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChoir(path)
	if err != nil {
		t.Fatalf("LoadChoir() failed: %v", err)
	}

	if cfg.Timing.RevealInterval != 2*time.Second {
		t.Errorf("reveal_interval = %v, want 2s", cfg.Timing.RevealInterval)
	}
	if cfg.Gameplay.MaxMistakes != 0 {
		t.Errorf("max_mistakes = %d, want 0", cfg.Gameplay.MaxMistakes)
	}
	// Untouched keys keep their defaults.
	if cfg.Gameplay.PointsPerRound != 1 || len(cfg.Keys.Low) == 0 {
		t.Errorf("defaults lost: %+v / %+v", cfg.Gameplay, cfg.Keys)
	}
}

func TestLoadChoirErrors(t *testing.T) {
	if _, err := LoadChoir(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadChoir(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  reveal_interval: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadChoir(invalid); err == nil {
		t.Error("zero reveal interval should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ChoirConfig)
	}{
		{"negative mistakes", func(c *ChoirConfig) { c.Gameplay.MaxMistakes = -1 }},
		{"zero points", func(c *ChoirConfig) { c.Gameplay.PointsPerRound = 0 }},
		{"floor above base", func(c *ChoirConfig) { c.Timing.MinRevealInterval = time.Minute }},
		{"no low key", func(c *ChoirConfig) { c.Keys.Low = nil }},
		{"no sample rate", func(c *ChoirConfig) { c.Audio.SampleRate = 0 }},
		{"note on quit key", func(c *ChoirConfig) { c.Keys.Low = []string{"q"} }},
		{"replay on pause key", func(c *ChoirConfig) { c.Keys.Replay = []string{"p"} }},
		{"note on restart key", func(c *ChoirConfig) { c.Keys.High = []string{"up", "r"} }},
		{"key shared by two notes", func(c *ChoirConfig) { c.Keys.MidLow = []string{"s"} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultChoirConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := DefaultChoirConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyChoirPreset(t *testing.T) {
	cfg := DefaultChoirConfig()
	ApplyChoirPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.Gameplay.MaxMistakes != 1 {
		t.Errorf("hard preset not applied: %+v %+v", cfg.Difficulty, cfg.Gameplay)
	}

	cfg = DefaultChoirConfig()
	ApplyChoirPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultChoirConfig()
	ApplyChoirPreset(&cfg, "")
	if cfg.Difficulty != DefaultChoirConfig().Difficulty {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", ok, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyRevealInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultChoirConfig().Difficulty)
	base, floor := 1500*time.Millisecond, 600*time.Millisecond

	if got := d.RevealInterval(base, floor, 0, 0); got != base {
		t.Errorf("interval at score 0 = %v, want %v", got, base)
	}

	// Level 1.0 with multiplier 1.5: 1.5s / 2.5 = 600ms.
	if got := d.RevealInterval(base, floor, 20, 0); got != floor {
		t.Errorf("interval at max = %v, want %v", got, floor)
	}

	mid := d.RevealInterval(base, floor, 10, 0)
	if mid >= base || mid <= floor {
		t.Errorf("interval at score 10 = %v, want between %v and %v", mid, floor, base)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false})
	if got := fixed.RevealInterval(base, floor, 100, 0); got != base {
		t.Errorf("disabled progression interval = %v, want %v", got, base)
	}
}

func TestDifficultyLevelTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level at half time = %v, want 0.75", got)
	}
	if got := d.Level(0, 1000); got != 1.0 {
		t.Errorf("Level past max = %v, want 1.0", got)
	}
}
