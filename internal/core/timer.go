package core

import "time"

// DefaultGravity is the interval between automatic one-row drops.
const DefaultGravity = 500 * time.Millisecond

// Gravity accumulates frame time and fires once the interval is reached.
// Firing zeroes the accumulator instead of subtracting the interval, so any
// overshoot is discarded.
type Gravity struct {
	interval    time.Duration
	accumulator time.Duration
}

// NewGravity constructs a Gravity timer with the given interval.
func NewGravity(interval time.Duration) *Gravity {
	g := &Gravity{}
	g.SetInterval(interval)
	return g
}

// SetInterval changes the drop interval. Non-positive values fall back to
// DefaultGravity.
func (g *Gravity) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultGravity
	}
	g.interval = interval
}

// Interval returns the configured drop interval.
func (g *Gravity) Interval() time.Duration { return g.interval }

// Elapsed returns the time accumulated since the last drop.
func (g *Gravity) Elapsed() time.Duration { return g.accumulator }

// Reset clears the accumulator.
func (g *Gravity) Reset() { g.accumulator = 0 }

// Advance adds delta and reports whether a drop is due.
func (g *Gravity) Advance(delta time.Duration) bool {
	if delta > 0 {
		g.accumulator += delta
	}
	if g.accumulator >= g.interval {
		g.accumulator = 0
		return true
	}
	return false
}

// Stopwatch measures wall-clock deltas between successive Lap calls.
type Stopwatch struct {
	now  func() time.Time
	last time.Time
}

// NewStopwatch returns a Stopwatch reading time.Now.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Lap returns the time since the previous Lap. The first call returns zero.
func (s *Stopwatch) Lap() time.Duration {
	now := s.now()
	if s.last.IsZero() {
		s.last = now
	}
	delta := now.Sub(s.last)
	s.last = now
	if delta < 0 {
		return 0
	}
	return delta
}

// Restart forgets the previous reading so the next Lap returns zero.
func (s *Stopwatch) Restart() { s.last = time.Time{} }
