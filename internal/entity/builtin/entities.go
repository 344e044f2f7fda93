package builtin

import "github.com/vovakirdan/bubble-arena/internal/core"

// Platform is a static surface.
type Platform struct {
	body
	rect core.Rect
}

// Rect returns the platform bounds.
func (p *Platform) Rect() core.Rect {
	return p.rect
}

// Dragon is a hero with lives and collected points.
type Dragon struct {
	body
	lives  int
	points int
}

// Lives returns the remaining lives.
func (d *Dragon) Lives() int {
	return d.lives
}

// Points returns the points collected so far.
func (d *Dragon) Points() int {
	return d.points
}

// Hit takes one life away. Lives never drop below zero.
func (d *Dragon) Hit() {
	if d.lives > 0 {
		d.lives--
	}
}

// AddPoints credits n points to the hero.
func (d *Dragon) AddPoints(n int) {
	d.points += n
}

// Enemy is a hostile character. It leaves the arena when its lives run out.
type Enemy struct {
	body
	lives int
}

// Lives returns the remaining lives.
func (e *Enemy) Lives() int {
	return e.lives
}

// Hit takes one life away.
func (e *Enemy) Hit() {
	if e.lives <= 0 {
		return
	}
	e.lives--
	if e.lives == 0 {
		e.leave()
	}
}

// Bonus awards its value to the first hero that collects it.
type Bonus struct {
	body
	value     int
	collected bool
}

// Value returns the points the bonus is worth.
func (b *Bonus) Value() int {
	return b.value
}

// Collect credits the bonus to d and removes it from the arena.
// It returns false if the bonus was already collected.
func (b *Bonus) Collect(d *Dragon) bool {
	if b.collected {
		return false
	}
	b.collected = true
	d.AddPoints(b.value)
	b.leave()
	return true
}

// Bubble is a projectile.
type Bubble struct {
	body
}

// Fire creates a bubble at from inside the arena.
func Fire(a *Arena, from core.Point) *Bubble {
	return &Bubble{body: join(a, from, bubbleSize, bubbleSize, TagBubble)}
}

// Pop removes the bubble from the arena.
func (b *Bubble) Pop() {
	b.leave()
}
