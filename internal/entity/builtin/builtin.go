// Package builtin is a small entity library backed by a resolv collision
// space. It lets the harness run without an external game engine: entities
// keep their state and register a tagged object in the arena space, while
// behaviour is driven by whoever holds the entities.
package builtin

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/entity"
	"github.com/vovakirdan/bubble-arena/internal/registry"
)

// Name is the registry name of this library.
const Name = "builtin"

// Collision tags.
const (
	TagPlatform = "platform"
	TagDragon   = "dragon"
	TagEnemy    = "enemy"
	TagBonus    = "bonus"
	TagBubble   = "bubble"
)

// Sprite sizes in field units.
const (
	dragonSize = 20
	enemySize  = 20
	bonusSize  = 10
	bubbleSize = 10
	cellSize   = 16
)

// Default tuning.
const (
	DefaultDragonLives = 3
	DefaultEnemyLives  = 1
	DefaultBonusValue  = 5
)

func init() {
	registry.Register(Name, "Built-in resolv arena", func(t entity.Tuning) entity.Library {
		return New(t)
	})
}

// Library implements entity.Library.
type Library struct {
	tuning entity.Tuning
}

// New creates a library. Zero tuning fields fall back to the defaults.
func New(t entity.Tuning) *Library {
	if t.DragonLives <= 0 {
		t.DragonLives = DefaultDragonLives
	}
	if t.EnemyLives <= 0 {
		t.EnemyLives = DefaultEnemyLives
	}
	if t.BonusValue <= 0 {
		t.BonusValue = DefaultBonusValue
	}
	return &Library{tuning: t}
}

// Tuning returns the effective tuning.
func (l *Library) Tuning() entity.Tuning {
	return l.tuning
}

// NewArena creates a w x h arena.
func (l *Library) NewArena(w, h int) entity.Arena {
	return NewArena(w, h)
}

// NewPlatform adds a solid platform to the arena.
func (l *Library) NewPlatform(a entity.Arena, pos core.Point, w, h int) entity.Platform {
	p := &Platform{rect: core.NewRect(pos.X, pos.Y, w, h)}
	p.body = join(a, pos, w, h, TagPlatform)
	return p
}

// NewDragon adds a hero to the arena.
func (l *Library) NewDragon(a entity.Arena, pos core.Point) entity.Dragon {
	return &Dragon{
		body:  join(a, pos, dragonSize, dragonSize, TagDragon),
		lives: l.tuning.DragonLives,
	}
}

// NewEnemy adds an enemy to the arena.
func (l *Library) NewEnemy(pos core.Point, a entity.Arena) entity.Enemy {
	return &Enemy{
		body:  join(a, pos, enemySize, enemySize, TagEnemy),
		lives: l.tuning.EnemyLives,
	}
}

// NewBonus adds a bonus to the arena.
func (l *Library) NewBonus(a entity.Arena, pos core.Point) entity.Bonus {
	return &Bonus{
		body:  join(a, pos, bonusSize, bonusSize, TagBonus),
		value: l.tuning.BonusValue,
	}
}

// Arena implements entity.Arena on top of a resolv.Space.
type Arena struct {
	space *resolv.Space
	w, h  int
	count int
}

// NewArena creates an empty arena of the given size.
func NewArena(w, h int) *Arena {
	return &Arena{
		space: resolv.NewSpace(w, h, cellSize, cellSize),
		w:     w,
		h:     h,
	}
}

// Size returns the field dimensions.
func (a *Arena) Size() (int, int) {
	return a.w, a.h
}

// Count returns the elapsed tick count.
func (a *Arena) Count() int {
	return a.count
}

// Tick advances the arena clock by one tick.
func (a *Arena) Tick() {
	a.count++
}

// body is the spatial part shared by all arena members.
type body struct {
	obj   *resolv.Object
	arena *Arena
}

// join creates a tagged object and adds it to the arena space. Arenas from
// other libraries get a detached object so positions still work.
func join(a entity.Arena, pos core.Point, w, h int, tag string) body {
	obj := resolv.NewObject(float64(pos.X), float64(pos.Y), float64(w), float64(h), tag)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(w), float64(h)))

	b := body{obj: obj}
	if arena, ok := a.(*Arena); ok {
		arena.space.Add(obj)
		b.arena = arena
	}
	return b
}

// Position returns the top-left corner of the entity.
func (b body) Position() core.Point {
	return core.Pt(int(b.obj.X), int(b.obj.Y))
}

// MoveTo places the entity at p. Inside an arena the entity is kept
// within the field.
func (b body) MoveTo(p core.Point) {
	if b.arena != nil {
		w, h := b.arena.Size()
		p.X = core.Clamp(p.X, 0, max(0, w-int(b.obj.W)))
		p.Y = core.Clamp(p.Y, 0, max(0, h-int(b.obj.H)))
	}
	b.obj.X = float64(p.X)
	b.obj.Y = float64(p.Y)
	b.obj.Update()
}

// Touching reports whether the entity overlaps any object carrying tag.
func (b body) Touching(tag string) bool {
	if b.obj.Space == nil {
		return false
	}
	return b.obj.Check(0, 0, tag) != nil
}

func (b body) leave() {
	if b.arena != nil && b.obj.Space != nil {
		b.arena.space.Remove(b.obj)
	}
}
