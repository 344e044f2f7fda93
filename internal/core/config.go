package core

// Values used when a RuntimeConfig field is left at zero.
const (
	DefaultFieldW      = 480
	DefaultFieldH      = 420
	DefaultPlayTime    = 120 // seconds
	DefaultTickRate    = 30  // arena ticks per second
	DefaultBonusPoints = 5
)

// RuntimeConfig contains the parameters a session is built with.
type RuntimeConfig struct {
	FieldW      int // Play field width
	FieldH      int // Play field height
	PlayTime    int // Time budget in seconds
	TickRate    int // Arena ticks per second
	BonusPoints int // Points awarded by every bonus
}

// DefaultConfig returns a RuntimeConfig with the classic arena settings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:      DefaultFieldW,
		FieldH:      DefaultFieldH,
		PlayTime:    DefaultPlayTime,
		TickRate:    DefaultTickRate,
		BonusPoints: DefaultBonusPoints,
	}
}

// WithDefaults returns a copy with every non-positive field replaced by its default.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.FieldW <= 0 {
		c.FieldW = DefaultFieldW
	}
	if c.FieldH <= 0 {
		c.FieldH = DefaultFieldH
	}
	if c.PlayTime <= 0 {
		c.PlayTime = DefaultPlayTime
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.BonusPoints <= 0 {
		c.BonusPoints = DefaultBonusPoints
	}
	return c
}

// TicksToSeconds converts an arena tick count to whole elapsed seconds.
// A non-positive rate falls back to DefaultTickRate.
func TicksToSeconds(ticks, rate int) int {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return ticks / rate
}
