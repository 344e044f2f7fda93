package config

import (
	_ "embed"

	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/level"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Field: FieldConfig{
			Width:  core.DefaultFieldW,
			Height: core.DefaultFieldH,
		},
		Time: TimeConfig{
			PlaySeconds:    core.DefaultPlayTime,
			TicksPerSecond: core.DefaultTickRate,
		},
		Scoring: ScoringConfig{
			BonusPoints: core.DefaultBonusPoints,
		},
		Files: level.DefaultFiles(),
		Library: LibraryConfig{
			Name:        "builtin",
			DragonLives: 3,
			EnemyLives:  1,
		},
	}
}

// fillDefaults replaces zero values with the defaults.
func fillDefaults(cfg *ArenaConfig) {
	d := DefaultArenaConfig()
	rt := cfg.Runtime()

	cfg.Field.Width = rt.FieldW
	cfg.Field.Height = rt.FieldH
	cfg.Time.PlaySeconds = rt.PlayTime
	cfg.Time.TicksPerSecond = rt.TickRate
	cfg.Scoring.BonusPoints = rt.BonusPoints
	cfg.Files = cfg.Files.WithDefaults()

	if cfg.Library.Name == "" {
		cfg.Library.Name = d.Library.Name
	}
	if cfg.Library.DragonLives <= 0 {
		cfg.Library.DragonLives = d.Library.DragonLives
	}
	if cfg.Library.EnemyLives <= 0 {
		cfg.Library.EnemyLives = d.Library.EnemyLives
	}
}
