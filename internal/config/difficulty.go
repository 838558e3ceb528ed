package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic"
)

// PresetInfo describes the board a preset produces.
type PresetInfo struct {
	Preset  DifficultyPreset
	Title   string
	Size    int
	Lives   int
	Hazards int
}

// presets is ordered from easiest to hardest.
var presets = []PresetInfo{
	{Preset: DifficultyEasy, Title: "Easy", Size: 8, Lives: 6, Hazards: 8},
	{Preset: DifficultyClassic, Title: "Classic", Size: 8, Lives: 4, Hazards: 8},
	{Preset: DifficultyNormal, Title: "Normal", Size: 8, Lives: 6, Hazards: 16},
	{Preset: DifficultyHard, Title: "Hard", Size: 12, Lives: 3, Hazards: 40},
}

// Presets returns all difficulty presets, easiest first.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	copy(out, presets)
	return out
}

// ParsePreset converts a CLI string into a preset.
// An empty string yields an empty preset and no error.
func ParsePreset(s string) (DifficultyPreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, p := range presets {
		if string(p.Preset) == s {
			return p.Preset, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, classic, normal or hard)", s)
}

// LookupPreset returns the board description for a preset.
func LookupPreset(preset DifficultyPreset) (PresetInfo, bool) {
	for _, p := range presets {
		if p.Preset == preset {
			return p, true
		}
	}
	return PresetInfo{}, false
}

// ApplyMinefieldPreset modifies the board section based on a difficulty preset.
// Generator parameters are left alone so layouts stay reproducible.
func ApplyMinefieldPreset(cfg *MinefieldConfig, preset DifficultyPreset) {
	info, ok := LookupPreset(preset)
	if !ok {
		return
	}
	cfg.Board.Size = info.Size
	cfg.Board.Lives = info.Lives
	cfg.Board.Hazards = info.Hazards
}
