// Package entity defines the contract between the session harness and the
// library that owns the actual game entities. The harness only constructs
// entities and queries their state; movement, collisions and scoring happen
// inside the library.
package entity

import "github.com/vovakirdan/bubble-arena/internal/core"

// Arena is the shared play field.
type Arena interface {
	// Size returns the field dimensions.
	Size() (w, h int)

	// Count returns the number of ticks elapsed since the arena was created.
	// It never decreases.
	Count() int
}

// Platform is a static collidable surface.
type Platform interface {
	Rect() core.Rect
}

// Enemy is a hostile character.
type Enemy interface {
	Position() core.Point
	Lives() int
}

// Dragon is a player-controlled hero.
type Dragon interface {
	Position() core.Point
	Lives() int
	Points() int
}

// Bonus is a collectible that awards points.
type Bonus interface {
	Position() core.Point
	Value() int
}

// Bubble is a projectile fired by a hero. The harness only stores them.
type Bubble interface {
	Position() core.Point
}

// Library constructs entities. Every spatial entity joins the arena it is
// given. Enemies take the position first, matching the library's constructor
// order.
type Library interface {
	NewArena(w, h int) Arena
	NewPlatform(a Arena, pos core.Point, w, h int) Platform
	NewDragon(a Arena, pos core.Point) Dragon
	NewEnemy(pos core.Point, a Arena) Enemy
	NewBonus(a Arena, pos core.Point) Bonus
}

// Ticker is implemented by arenas whose clock can be advanced by the caller.
type Ticker interface {
	Tick()
}

// Tuning carries the per-entity values a library may let the caller adjust.
// Zero fields keep the library's own defaults.
type Tuning struct {
	DragonLives int
	EnemyLives  int
	BonusValue  int
}
