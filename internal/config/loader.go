package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChoir loads the choir configuration. Files are decoded over the
// built-in defaults, so a file only needs the keys it changes.
// Search order: customPath -> ~/.choir/configs/choir.yaml -> ./configs/choir.yaml -> embedded default
func LoadChoir(customPath string) (ChoirConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChoirConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseChoir(data)
		if err != nil {
			return ChoirConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{filepath.Join("configs", "choir.yaml")}
	if userCfgPath := userConfigPath("choir.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseChoir(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parseChoir(defaultChoirYAML)
	if err != nil {
		return DefaultChoirConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseChoir(data []byte) (ChoirConfig, error) {
	cfg := DefaultChoirConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChoirConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".choir", "configs", filename)
}

// ApplyChoirPreset modifies the config based on a difficulty preset.
func ApplyChoirPreset(cfg *ChoirConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxMistakes = 5
	case DifficultyHard:
		cfg.Gameplay.MaxMistakes = 1
	}
}
