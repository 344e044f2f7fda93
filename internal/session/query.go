package session

import (
	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/entity"
	"github.com/vovakirdan/bubble-arena/internal/level"
)

// Arena returns the shared arena.
func (s *Session) Arena() entity.Arena {
	return s.arena
}

// Hero returns the primary hero.
func (s *Session) Hero() entity.Dragon {
	return s.hero
}

// Hero1 returns the secondary hero.
func (s *Session) Hero1() entity.Dragon {
	return s.hero1
}

// HeroByID returns the hero for a player, or nil for an unknown ID.
func (s *Session) HeroByID(id core.PlayerID) entity.Dragon {
	switch id {
	case core.Player1:
		return s.hero
	case core.Player2:
		return s.hero1
	default:
		return nil
	}
}

// Enemies returns all enemies in file order, defeated ones included.
func (s *Session) Enemies() []entity.Enemy {
	return s.enemies
}

// Platforms returns all platforms in file order.
func (s *Session) Platforms() []entity.Platform {
	return s.platforms
}

// Bonuses returns all bonuses in file order.
func (s *Session) Bonuses() []entity.Bonus {
	return s.bonuses
}

// Bubbles returns the bubbles added so far.
func (s *Session) Bubbles() []entity.Bubble {
	return s.bubbles
}

// AddBubble records a bubble fired during play.
func (s *Session) AddBubble(b entity.Bubble) {
	s.bubbles = append(s.bubbles, b)
}

// Layout returns the level the session was built from.
func (s *Session) Layout() *level.Layout {
	return s.layout
}

// Config returns the effective runtime configuration.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// TotalPoints is the score both heroes need together to win: the bonus value
// times the number of bonuses loaded. It does not change after construction.
func (s *Session) TotalPoints() int {
	return s.totalPoints
}

// EnemyLives returns the sum of all enemies' lives.
func (s *Session) EnemyLives() int {
	total := 0
	for _, e := range s.enemies {
		total += e.Lives()
	}
	return total
}

// Points returns the combined points of both heroes.
func (s *Session) Points() int {
	return s.hero.Points() + s.hero1.Points()
}

// RemainingTime returns the seconds left in the time budget. It is computed
// from the arena tick count and never drops below zero.
func (s *Session) RemainingTime() int {
	elapsed := core.TicksToSeconds(s.arena.Count(), s.cfg.TickRate)
	remaining := s.cfg.PlayTime - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// GameOver reports a loss: either hero is out of lives, or time is up while
// enemies are still alive. Time running out with no enemies left is not a
// loss by itself.
func (s *Session) GameOver() bool {
	if s.hero.Lives() <= 0 || s.hero1.Lives() <= 0 {
		return true
	}
	return s.RemainingTime() <= 0 && s.EnemyLives() > 0
}

// GameWon reports a win: every enemy defeated and every bonus collected.
func (s *Session) GameWon() bool {
	return s.EnemyLives() == 0 && s.Points() == s.totalPoints
}

// Outcome combines GameOver and GameWon. A loss takes precedence.
func (s *Session) Outcome() Outcome {
	switch {
	case s.GameOver():
		return Lost
	case s.GameWon():
		return Won
	default:
		return Running
	}
}

// State returns a snapshot of every query.
func (s *Session) State() State {
	return State{
		RemainingTime: s.RemainingTime(),
		EnemyLives:    s.EnemyLives(),
		Points:        s.Points(),
		TotalPoints:   s.totalPoints,
		HeroLives:     [2]int{s.hero.Lives(), s.hero1.Lives()},
		GameOver:      s.GameOver(),
		GameWon:       s.GameWon(),
	}
}
