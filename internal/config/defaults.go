package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/choir.yaml
var defaultChoirYAML []byte

// DefaultChoirConfig returns the built-in choir configuration.
func DefaultChoirConfig() ChoirConfig {
	return ChoirConfig{
		Timing: ChoirTiming{
			RevealInterval:    1500 * time.Millisecond,
			MinRevealInterval: 600 * time.Millisecond,
			WobblePeriod:      time.Second,
			FeedbackDuration:  900 * time.Millisecond,
		},
		Gameplay: ChoirGameplay{
			MaxMistakes:    3,
			OpeningScale:   true,
			PointsPerRound: 1,
		},
		Keys: ChoirKeys{
			Low:     []string{"s", "down"},
			MidLow:  []string{"a", "left"},
			MidHigh: []string{"d", "right"},
			High:    []string{"w", "up"},
			Replay:  []string{" "},
		},
		Audio: AudioConfig{
			Enabled:       true,
			SampleRate:    44100,
			Volume:        -1,
			NoteLength:    600 * time.Millisecond,
			ChoirLength:   1200 * time.Millisecond,
			JingleLength:  400 * time.Millisecond,
			SpeakerBuffer: 50 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "choir", "choir_endless":
		return defaultChoirYAML
	default:
		return nil
	}
}
