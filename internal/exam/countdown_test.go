package exam

import "testing"

func TestCountdown_ExpiresExactlyOnce(t *testing.T) {
	var c Countdown
	gen := c.Start(3)

	if !c.Running() {
		t.Fatal("expected countdown to be running")
	}

	if c.Tick(gen) {
		t.Fatal("expired after 1 tick, want 3")
	}
	if c.Tick(gen) {
		t.Fatal("expired after 2 ticks, want 3")
	}
	if !c.Tick(gen) {
		t.Fatal("expected expiry on third tick")
	}

	// Further ticks on the expired timer are no-ops.
	if c.Tick(gen) {
		t.Fatal("expired twice")
	}
	if c.Running() {
		t.Fatal("expected countdown stopped after expiry")
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", c.Remaining())
	}
}

func TestCountdown_StaleGenerationIgnored(t *testing.T) {
	var c Countdown
	old := c.Start(2)
	gen := c.Start(2)

	if c.Tick(old) {
		t.Fatal("stale tick expired the timer")
	}
	if c.Remaining() != 2 {
		t.Fatalf("stale tick decremented: remaining = %d, want 2", c.Remaining())
	}

	c.Tick(gen)
	if c.Remaining() != 1 {
		t.Fatalf("remaining = %d, want 1", c.Remaining())
	}
}

func TestCountdown_StopDiscardsInFlightTicks(t *testing.T) {
	var c Countdown
	gen := c.Start(1)
	c.Stop()

	if c.Tick(gen) {
		t.Fatal("tick after stop expired the timer")
	}
	if c.Running() {
		t.Fatal("expected stopped countdown")
	}
}

func TestCountdown_StartZeroNotRunning(t *testing.T) {
	var c Countdown
	gen := c.Start(0)
	if c.Running() {
		t.Fatal("zero-second countdown should not run")
	}
	if c.Tick(gen) {
		t.Fatal("tick on a non-running timer expired")
	}
}

func TestCountdown_RestartBumpsGeneration(t *testing.T) {
	var c Countdown
	g1 := c.Start(5)
	g2 := c.Start(5)
	if g2 <= g1 {
		t.Fatalf("generation did not advance: %d then %d", g1, g2)
	}
	if c.Generation() != g2 {
		t.Fatalf("Generation() = %d, want %d", c.Generation(), g2)
	}
}
