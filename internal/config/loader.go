package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/minefield/internal/rng"
)

// EnvPrefix is prepended to every environment override, e.g. MINEFIELD_SIZE.
const EnvPrefix = "MINEFIELD_"

// Board limits. Columns are labeled A-Z, hence the upper bound.
const (
	MinBoardSize = 4
	MaxBoardSize = 26
)

// ErrInvalidConfig is returned by Validate for values the game cannot start with.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadMinefield loads minefield configuration and applies environment overrides.
// Search order: customPath -> ~/.minefield/configs/minefield.yaml -> ./configs/minefield.yaml -> embedded default
func LoadMinefield(customPath string) (MinefieldConfig, error) {
	cfg, err := loadMinefieldFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadMinefieldFile(customPath string) (MinefieldConfig, error) {
	var cfg MinefieldConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("minefield.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/minefield.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMinefieldYAML, &cfg); err != nil {
		return DefaultMinefieldConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// applyEnv overrides fields whose MINEFIELD_* variable is set.
func applyEnv(cfg *MinefieldConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minefield", "configs", filename)
}

// Validate checks the configuration against the board and generator rules.
func (c MinefieldConfig) Validate() error {
	b := c.Board
	if b.Size < MinBoardSize || b.Size > MaxBoardSize {
		return fmt.Errorf("%w: board size %d not in [%d, %d]", ErrInvalidConfig, b.Size, MinBoardSize, MaxBoardSize)
	}
	if b.Lives < 0 {
		return fmt.Errorf("%w: lives %d is negative", ErrInvalidConfig, b.Lives)
	}
	if b.Hazards < 0 || b.Hazards > b.Size*b.Size-2 {
		return fmt.Errorf("%w: hazards %d not in [0, %d]", ErrInvalidConfig, b.Hazards, b.Size*b.Size-2)
	}

	g := c.Generator
	if g.Multiplier < 1 || g.Multiplier >= rng.Modulus || !rng.IsPrime(g.Multiplier) {
		return fmt.Errorf("%w: generator multiplier %d must be a prime below %d", ErrInvalidConfig, g.Multiplier, rng.Modulus)
	}
	if g.Increment < 1 || g.Increment >= rng.Modulus {
		return fmt.Errorf("%w: generator increment %d not in [1, %d)", ErrInvalidConfig, g.Increment, rng.Modulus)
	}
	return nil
}
