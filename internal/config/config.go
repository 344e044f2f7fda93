// Package config provides YAML-based arena configuration loading.
package config

import (
	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/entity"
	"github.com/vovakirdan/bubble-arena/internal/level"
)

// ArenaConfig contains all configuration for loading and judging a session.
type ArenaConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Time    TimeConfig    `yaml:"time"`
	Scoring ScoringConfig `yaml:"scoring"`
	Files   level.Files   `yaml:"files"`
	Library LibraryConfig `yaml:"library"`
}

// FieldConfig defines the play field size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimeConfig defines the time budget.
type TimeConfig struct {
	PlaySeconds    int `yaml:"play_seconds"`
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	BonusPoints int `yaml:"bonus_points"`
}

// LibraryConfig selects and tunes the entity library.
type LibraryConfig struct {
	Name        string `yaml:"name"`
	DragonLives int    `yaml:"dragon_lives"`
	EnemyLives  int    `yaml:"enemy_lives"`
}

// Runtime converts the config into the session runtime parameters.
func (c ArenaConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		FieldW:      c.Field.Width,
		FieldH:      c.Field.Height,
		PlayTime:    c.Time.PlaySeconds,
		TickRate:    c.Time.TicksPerSecond,
		BonusPoints: c.Scoring.BonusPoints,
	}.WithDefaults()
}

// Tuning returns the entity tuning. Bonuses are worth the configured points
// so the library and the win threshold agree.
func (c ArenaConfig) Tuning() entity.Tuning {
	return entity.Tuning{
		DragonLives: c.Library.DragonLives,
		EnemyLives:  c.Library.EnemyLives,
		BonusValue:  c.Runtime().BonusPoints,
	}
}
