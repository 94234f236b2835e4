// Package clock keeps logical playback time.
package clock

// Clock accumulates wall-clock deltas into elapsed playback time. It never
// reads a time source itself: the caller measures deltas and feeds them in,
// so the clock is immune to whatever happened between ticks while paused.
type Clock struct {
	elapsed   float64
	paused    bool
	pausedFor float64
}

func New() *Clock { return &Clock{} }

// Tick advances elapsed time by dt seconds. While paused the delta only goes
// to the pause accumulator. Negative deltas are ignored.
func (c *Clock) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if c.paused {
		c.pausedFor += dt
		return
	}
	c.elapsed += dt
}

func (c *Clock) Pause() { c.paused = true }

func (c *Clock) Resume() { c.paused = false }

func (c *Clock) Paused() bool { return c.paused }

// Now is the current playback time in seconds.
func (c *Clock) Now() float64 { return c.elapsed }

// PausedFor is the total wall time reported while paused since the last Reset.
func (c *Clock) PausedFor() float64 { return c.pausedFor }

func (c *Clock) Reset() {
	c.elapsed = 0
	c.paused = false
	c.pausedFor = 0
}
