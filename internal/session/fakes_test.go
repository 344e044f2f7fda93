package session

import (
	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/entity"
)

type fakeArena struct {
	w, h  int
	count int
}

func (a *fakeArena) Size() (int, int) { return a.w, a.h }
func (a *fakeArena) Count() int       { return a.count }

type fakePlatform struct{ rect core.Rect }

func (p *fakePlatform) Rect() core.Rect { return p.rect }

type fakeEnemy struct {
	pos   core.Point
	lives int
}

func (e *fakeEnemy) Position() core.Point { return e.pos }
func (e *fakeEnemy) Lives() int           { return e.lives }

type fakeDragon struct {
	pos    core.Point
	lives  int
	points int
}

func (d *fakeDragon) Position() core.Point { return d.pos }
func (d *fakeDragon) Lives() int           { return d.lives }
func (d *fakeDragon) Points() int          { return d.points }

type fakeBonus struct{ pos core.Point }

func (b *fakeBonus) Position() core.Point { return b.pos }
func (b *fakeBonus) Value() int           { return 5 }

type fakeBubble struct{ pos core.Point }

func (b *fakeBubble) Position() core.Point { return b.pos }

// fakeLibrary records every constructor call in order.
type fakeLibrary struct {
	calls  []string
	arenas []*fakeArena
}

func (l *fakeLibrary) NewArena(w, h int) entity.Arena {
	l.calls = append(l.calls, "arena")
	a := &fakeArena{w: w, h: h}
	l.arenas = append(l.arenas, a)
	return a
}

func (l *fakeLibrary) NewPlatform(a entity.Arena, pos core.Point, w, h int) entity.Platform {
	l.check(a)
	l.calls = append(l.calls, "platform")
	return &fakePlatform{rect: core.NewRect(pos.X, pos.Y, w, h)}
}

func (l *fakeLibrary) NewDragon(a entity.Arena, pos core.Point) entity.Dragon {
	l.check(a)
	l.calls = append(l.calls, "dragon")
	return &fakeDragon{pos: pos, lives: 3}
}

func (l *fakeLibrary) NewEnemy(pos core.Point, a entity.Arena) entity.Enemy {
	l.check(a)
	l.calls = append(l.calls, "enemy")
	return &fakeEnemy{pos: pos, lives: 1}
}

func (l *fakeLibrary) NewBonus(a entity.Arena, pos core.Point) entity.Bonus {
	l.check(a)
	l.calls = append(l.calls, "bonus")
	return &fakeBonus{pos: pos}
}

// check panics when an entity is built before, or outside, the arena.
func (l *fakeLibrary) check(a entity.Arena) {
	if len(l.arenas) == 0 || a != entity.Arena(l.arenas[len(l.arenas)-1]) {
		panic("entity constructed without the session arena")
	}
}
