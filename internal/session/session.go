// Package session builds a game session from a level layout and answers the
// win/loss questions about it. All gameplay state lives in the entity
// library; the session only constructs entities and aggregates their state.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/entity"
	"github.com/vovakirdan/bubble-arena/internal/level"
)

// Outcome is the derived result of a session at a point in time.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session queries.
type State struct {
	RemainingTime int
	EnemyLives    int
	Points        int // Combined hero points
	TotalPoints   int
	HeroLives     [2]int
	GameOver      bool
	GameWon       bool
}

// Session owns the entities of one loaded level.
type Session struct {
	cfg    core.RuntimeConfig
	layout *level.Layout
	logger *log.Logger

	arena     entity.Arena
	platforms []entity.Platform
	hero      entity.Dragon
	hero1     entity.Dragon
	enemies   []entity.Enemy
	bonuses   []entity.Bonus
	bubbles   []entity.Bubble

	totalPoints int
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger *log.Logger
	files  level.Files
}

// WithLogger sets the logger used during construction.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFiles overrides the level file names used by Load.
func WithFiles(f level.Files) Option {
	return func(o *options) {
		o.files = f
	}
}

func buildOptions(opts []Option) options {
	o := options{files: level.DefaultFiles()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// Load reads the level files in dir and builds a session from them.
// Any error aborts construction; no partial session is returned.
func Load(dir string, lib entity.Library, cfg core.RuntimeConfig, opts ...Option) (*Session, error) {
	o := buildOptions(opts)

	layout, err := level.Load(dir, o.files)
	if err != nil {
		return nil, err
	}

	return New(lib, layout, cfg, opts...), nil
}

// New builds a session from an already parsed layout. The arena is created
// first, then platforms, heroes, enemies and bonuses in file order.
func New(lib entity.Library, layout *level.Layout, cfg core.RuntimeConfig, opts ...Option) *Session {
	o := buildOptions(opts)
	cfg = cfg.WithDefaults()

	s := &Session{
		cfg:    cfg,
		layout: layout,
		logger: o.logger,
		arena:  lib.NewArena(cfg.FieldW, cfg.FieldH),
	}

	s.platforms = make([]entity.Platform, 0, len(layout.Platforms))
	for _, r := range layout.Platforms {
		s.platforms = append(s.platforms, lib.NewPlatform(s.arena, r.Min(), r.W, r.H))
	}

	s.hero = lib.NewDragon(s.arena, layout.Heroes[0])
	s.hero1 = lib.NewDragon(s.arena, layout.Heroes[1])

	s.enemies = make([]entity.Enemy, 0, len(layout.Enemies))
	for _, p := range layout.Enemies {
		s.enemies = append(s.enemies, lib.NewEnemy(p, s.arena))
	}

	s.bonuses = make([]entity.Bonus, 0, len(layout.Bonuses))
	for _, p := range layout.Bonuses {
		s.bonuses = append(s.bonuses, lib.NewBonus(s.arena, p))
		s.totalPoints += cfg.BonusPoints
	}

	s.logger.Debug("session loaded",
		"dir", layout.Dir,
		"platforms", len(s.platforms),
		"enemies", len(s.enemies),
		"bonuses", len(s.bonuses),
		"total_points", s.totalPoints,
	)

	return s
}
