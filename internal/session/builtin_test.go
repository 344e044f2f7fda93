package session

import (
	"testing"

	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/entity"
	"github.com/vovakirdan/bubble-arena/internal/entity/builtin"
)

func TestPlayThroughWithBuiltinLibrary(t *testing.T) {
	dir := writeLevel(t, sampleFiles())

	s, err := Load(dir, builtin.New(entity.Tuning{}), core.DefaultConfig())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	arena := s.Arena().(*builtin.Arena)
	hero := s.Hero().(*builtin.Dragon)

	for i := 0; i < 90; i++ {
		arena.Tick()
	}
	if s.RemainingTime() != 117 {
		t.Errorf("RemainingTime() = %d, expected 117", s.RemainingTime())
	}

	bubble := builtin.Fire(arena, hero.Position())
	s.AddBubble(bubble)
	bubble.MoveTo(s.Enemies()[0].Position())
	if !bubble.Touching(builtin.TagEnemy) {
		t.Fatal("bubble moved onto the enemy should touch it")
	}
	s.Enemies()[0].(*builtin.Enemy).Hit()
	bubble.Pop()

	if s.EnemyLives() != 0 {
		t.Fatalf("EnemyLives() = %d, expected 0", s.EnemyLives())
	}
	if s.GameWon() {
		t.Error("GameWon() should wait for the bonus")
	}

	hero.MoveTo(s.Bonuses()[0].Position())
	s.Bonuses()[0].(*builtin.Bonus).Collect(hero)

	if !s.GameWon() {
		t.Errorf("GameWon() = false with state %+v", s.State())
	}
	if s.GameOver() {
		t.Error("GameOver() should be false after a win")
	}
	if s.Outcome() != Won {
		t.Errorf("Outcome() = %v, expected won", s.Outcome())
	}
}

func TestTimeOutWithBuiltinLibrary(t *testing.T) {
	dir := writeLevel(t, sampleFiles())

	cfg := core.DefaultConfig()
	cfg.PlayTime = 2
	s, err := Load(dir, builtin.New(entity.Tuning{}), cfg)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	arena := s.Arena().(*builtin.Arena)
	for i := 0; i < 60; i++ {
		arena.Tick()
	}

	if s.RemainingTime() != 0 {
		t.Errorf("RemainingTime() = %d, expected 0", s.RemainingTime())
	}
	if !s.GameOver() {
		t.Error("GameOver() should be true when time is up with an enemy alive")
	}
}
