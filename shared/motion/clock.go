package motion

import (
	"time"

	"github.com/automoto/chickenwalk/shared/gamemath"
)

// DefaultMaxElapsed caps a single frame delta so a stalled driver (hidden
// window, debugger pause) does not teleport the walker.
const DefaultMaxElapsed = 0.05

// Clock turns wall-clock readings taken once per display refresh into
// clamped frame deltas.
type Clock struct {
	Now        func() time.Time
	MaxElapsed float64
	last       time.Time
	started    bool
}

func NewClock(maxElapsed float64) *Clock {
	if maxElapsed <= 0 {
		maxElapsed = DefaultMaxElapsed
	}
	return &Clock{Now: time.Now, MaxElapsed: maxElapsed}
}

// Elapsed returns seconds since the previous call, clamped into
// [0, MaxElapsed]. The first call returns 0.
func (c *Clock) Elapsed() float64 {
	now := c.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return gamemath.ClampElapsed(dt, c.MaxElapsed)
}
