package config

import (
	_ "embed"
)

//go:embed defaults/minefield.yaml
var defaultMinefieldYAML []byte

// DefaultMinefieldConfig returns the default minefield configuration.
func DefaultMinefieldConfig() MinefieldConfig {
	return MinefieldConfig{
		Board: BoardConfig{
			Size:    8,
			Lives:   6,
			Hazards: 16,
		},
		Generator: GeneratorConfig{
			Multiplier: 7,
			Increment:  1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "minefield":
		return defaultMinefieldYAML
	default:
		return nil
	}
}
