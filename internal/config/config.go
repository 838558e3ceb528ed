// Package config provides YAML-based game configuration loading and
// difficulty presets for the minefield game.
package config

// MinefieldConfig contains all configuration for a minefield session.
type MinefieldConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Generator GeneratorConfig `yaml:"generator"`
}

// BoardConfig defines the grid and the player's resources.
type BoardConfig struct {
	Size    int `yaml:"size" env:"SIZE"`       // Side length, 4-26
	Lives   int `yaml:"lives" env:"LIVES"`     // Retries before the game is lost
	Hazards int `yaml:"hazards" env:"HAZARDS"` // Hidden hazard cells, at most size*size-2
}

// GeneratorConfig defines the parameters of the hazard placement generator.
// Identical parameters always produce identical layouts.
type GeneratorConfig struct {
	Multiplier int `yaml:"multiplier" env:"MULTIPLIER"` // Must be prime
	Increment  int `yaml:"increment" env:"INCREMENT"`
}

// BoardOverrides holds optional per-run board values, typically from CLI flags.
// A zero Size and nil pointers leave the loaded value unchanged. Lives and
// Hazards are pointers because zero is a valid request for both.
type BoardOverrides struct {
	Size    int
	Lives   *int
	Hazards *int
}

// Apply copies the set override fields into cfg.
func (o BoardOverrides) Apply(cfg *MinefieldConfig) {
	if o.Size > 0 {
		cfg.Board.Size = o.Size
	}
	if o.Lives != nil {
		cfg.Board.Lives = *o.Lives
	}
	if o.Hazards != nil {
		cfg.Board.Hazards = *o.Hazards
	}
}
