package exam

// Countdown is the single-timer abstraction driving timed exam phases.
// It does not tick by itself: the host event loop calls Tick once per
// wall-clock second, passing the generation token returned by Start.
// Ticks carrying a stale generation are ignored, so a timer that was
// stopped or restarted cannot fire a spurious expiry.
type Countdown struct {
	remaining int
	running   bool
	gen       int
}

// Start arms the countdown for the given number of seconds, replacing any
// previously running timer. It returns the generation token that subsequent
// Tick calls must present.
func (c *Countdown) Start(seconds int) int {
	c.gen++
	c.remaining = seconds
	c.running = seconds > 0
	return c.gen
}

// Tick decrements the remaining time by one second. It returns true exactly
// once, on the transition from 1 to 0. Ticks with a stale generation or on a
// stopped timer are no-ops.
func (c *Countdown) Tick(gen int) (expired bool) {
	if gen != c.gen || !c.running {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}

// Stop halts the countdown. Idempotent. Any tick still in flight for the
// old generation will be discarded.
func (c *Countdown) Stop() {
	c.gen++
	c.running = false
	c.remaining = 0
}

// Remaining returns the seconds left on the timer.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Running reports whether the countdown is armed.
func (c *Countdown) Running() bool {
	return c.running
}

// Generation returns the current generation token.
func (c *Countdown) Generation() int {
	return c.gen
}
