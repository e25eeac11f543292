package timer

import (
	"errors"
	"testing"
)

func TestNewCountdownIsStopped(t *testing.T) {
	c := NewCountdown()
	if c.State() != StateStopped {
		t.Fatalf("expected stopped, got %v", c.State())
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", c.Remaining())
	}
}

func TestStartOnlyFromStopped(t *testing.T) {
	c := NewCountdown()
	if err := c.Start(10); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := c.Start(20); !errors.Is(err, ErrNotStopped) {
		t.Fatalf("expected ErrNotStopped, got %v", err)
	}
	if c.Remaining() != 10 {
		t.Fatalf("expected remaining to stay 10, got %d", c.Remaining())
	}
	if err := c.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if err := c.Start(20); !errors.Is(err, ErrNotStopped) {
		t.Fatalf("expected ErrNotStopped while paused, got %v", err)
	}
}

func TestStartRejectsNegative(t *testing.T) {
	c := NewCountdown()
	if err := c.Start(-1); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if c.State() != StateStopped {
		t.Fatalf("expected stopped, got %v", c.State())
	}
}

func TestTickFullCountdown(t *testing.T) {
	c := NewCountdown()
	if err := c.Start(90); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	first := c.Tick()
	if FormatTime(first.Display) != "00:01:30" {
		t.Fatalf("expected first display 00:01:30, got %s", FormatTime(first.Display))
	}

	expired := 0
	var last TickResult
	for i := 0; i < 90; i++ {
		last = c.Tick()
		if last.Expired {
			expired++
		}
	}
	if expired != 1 {
		t.Fatalf("expected exactly one expiry, got %d", expired)
	}
	if !last.Expired || FormatTime(last.Display) != "00:00:00" {
		t.Fatalf("expected final tick to expire at 00:00:00, got %+v", last)
	}
	if c.State() != StateStopped {
		t.Fatalf("expected stopped after expiry, got %v", c.State())
	}

	after := c.Tick()
	if !after.Skipped || after.Expired {
		t.Fatalf("expected tick after expiry to be skipped, got %+v", after)
	}
}

func TestTickOnlyWhileRunning(t *testing.T) {
	c := NewCountdown()
	if res := c.Tick(); !res.Skipped {
		t.Fatalf("expected skipped tick while stopped")
	}
	_ = c.Start(5)
	_ = c.Pause()
	for i := 0; i < 3; i++ {
		if res := c.Tick(); !res.Skipped {
			t.Fatalf("expected skipped tick while paused")
		}
	}
	if c.Remaining() != 5 {
		t.Fatalf("expected remaining 5 while paused, got %d", c.Remaining())
	}
}

func TestZeroSecondsExpiresOnFirstTick(t *testing.T) {
	c := NewCountdown()
	if err := c.Start(0); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if res := c.Tick(); !res.Expired {
		t.Fatalf("expected immediate expiry, got %+v", res)
	}
}

func TestPauseResumeKeepsRemaining(t *testing.T) {
	c := NewCountdown()
	_ = c.Start(30)
	c.Tick()
	c.Tick()
	r := c.Remaining()

	state, err := c.TogglePause()
	if err != nil || state != StatePaused {
		t.Fatalf("expected paused, got %v (%v)", state, err)
	}
	state, err = c.TogglePause()
	if err != nil || state != StateRunning {
		t.Fatalf("expected running, got %v (%v)", state, err)
	}
	if c.Remaining() != r {
		t.Fatalf("expected remaining %d, got %d", r, c.Remaining())
	}
}

func TestPauseResumeFromStopped(t *testing.T) {
	c := NewCountdown()
	if err := c.Pause(); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
	if err := c.Resume(); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
	if _, err := c.TogglePause(); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
}

func TestStopResetsFromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Countdown)
	}{
		{"stopped", func(c *Countdown) {}},
		{"running", func(c *Countdown) { _ = c.Start(42) }},
		{"paused", func(c *Countdown) { _ = c.Start(42); _ = c.Pause() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCountdown()
			tt.setup(c)
			c.Stop()
			snap := c.GetSnapshot()
			if snap.State != StateStopped || snap.Remaining != 0 {
				t.Fatalf("expected stopped at 0, got %+v", snap)
			}
			if err := c.Start(1); err != nil {
				t.Fatalf("expected Start to be allowed after Stop: %v", err)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "running" || StatePaused.String() != "paused" || StateStopped.String() != "stopped" {
		t.Fatalf("unexpected state names")
	}
}
