// Package config provides YAML-based game configuration loading and
// difficulty management for the choir game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ChoirConfig contains all configuration for the choir game.
type ChoirConfig struct {
	Timing     ChoirTiming      `yaml:"timing"`
	Gameplay   ChoirGameplay    `yaml:"gameplay"`
	Keys       ChoirKeys        `yaml:"keys"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChoirTiming defines how fast the choir reveals notes.
type ChoirTiming struct {
	RevealInterval    time.Duration `yaml:"reveal_interval"`     // Time between revealed notes
	MinRevealInterval time.Duration `yaml:"min_reveal_interval"` // Floor once difficulty speeds things up
	WobblePeriod      time.Duration `yaml:"wobble_period"`       // One full sway of the singers
	FeedbackDuration  time.Duration `yaml:"feedback_duration"`   // How long match/mismatch banners stay
}

// ChoirGameplay defines scoring and failure rules.
type ChoirGameplay struct {
	MaxMistakes    int  `yaml:"max_mistakes"`    // Wrong sequences allowed before game over (0 = unlimited)
	OpeningScale   bool `yaml:"opening_scale"`   // First round is C E G C' instead of random
	PointsPerRound int  `yaml:"points_per_round"`
}

// ChoirKeys maps terminal keys to the four pitches and the replay trigger.
// Key names follow Bubble Tea's KeyMsg.String() ("up", "a", " ").
type ChoirKeys struct {
	Low     []string `yaml:"low"`
	MidLow  []string `yaml:"mid_low"`
	MidHigh []string `yaml:"mid_high"`
	High    []string `yaml:"high"`
	Replay  []string `yaml:"replay"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled       bool          `yaml:"enabled"`
	SampleRate    int           `yaml:"sample_rate"`
	Volume        float64       `yaml:"volume"`      // Relative volume, log2 scale (0 = unchanged, -1 = half)
	SamplesDir    string        `yaml:"samples_dir"` // Optional directory with WAV samples
	NoteLength    time.Duration `yaml:"note_length"`
	ChoirLength   time.Duration `yaml:"choir_length"`
	JingleLength  time.Duration `yaml:"jingle_length"`
	SpeakerBuffer time.Duration `yaml:"speaker_buffer"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to reveal speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ReservedKeys are the fixed game-screen bindings (quit, pause, restart,
// back, screenshot). Note and replay keys may not use them.
var ReservedKeys = []string{"q", "ctrl+c", "p", "esc", "r", "b", "ctrl+s"}

// Validate reports configuration values the game cannot run with.
func (c ChoirConfig) Validate() error {
	var errs []error
	if c.Timing.RevealInterval <= 0 {
		errs = append(errs, errors.New("timing.reveal_interval must be positive"))
	}
	if c.Timing.MinRevealInterval < 0 || c.Timing.MinRevealInterval > c.Timing.RevealInterval {
		errs = append(errs, errors.New("timing.min_reveal_interval must be between 0 and reveal_interval"))
	}
	if c.Gameplay.MaxMistakes < 0 {
		errs = append(errs, errors.New("gameplay.max_mistakes must not be negative"))
	}
	if c.Gameplay.PointsPerRound <= 0 {
		errs = append(errs, errors.New("gameplay.points_per_round must be positive"))
	}
	errs = append(errs, c.Keys.validate()...)
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, errors.New("audio.sample_rate must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid choir config: %w", err)
	}
	return nil
}

func (k ChoirKeys) validate() []error {
	bindings := []struct {
		name string
		keys []string
	}{
		{"low", k.Low}, {"mid_low", k.MidLow}, {"mid_high", k.MidHigh},
		{"high", k.High}, {"replay", k.Replay},
	}

	var errs []error
	owner := make(map[string]string)
	for _, r := range ReservedKeys {
		owner[r] = "a built-in control"
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must list at least one key", b.name))
		}
		for _, key := range b.keys {
			if other, taken := owner[key]; taken {
				errs = append(errs, fmt.Errorf("keys.%s: %q is already used by %s", b.name, key, other))
				continue
			}
			owner[key] = "keys." + b.name
		}
	}
	return errs
}
