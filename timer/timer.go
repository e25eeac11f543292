// Package timer contains the domain logic of the countdown: the Config
// definition, the input validator and the Countdown state machine.
//
// The Countdown itself does not schedule anything. Ticks are driven from the
// outside (see package control) so that a single goroutine performs every
// transition and ticks can never overlap.
package timer

import (
	"errors"
	"sync"
)

var (
	// ErrNotStopped is returned by Start while a countdown is in progress.
	ErrNotStopped = errors.New("countdown already in progress")
	// ErrNotActive is returned by Pause and Resume when nothing is counting.
	ErrNotActive = errors.New("countdown is not active")
)

// Countdown is the single countdown owned by the application.
type Countdown struct {
	mu        sync.RWMutex
	state     State
	remaining int
}

// Snapshot is a consistent copy of the countdown fields for rendering.
type Snapshot struct {
	State     State
	Remaining int
}

// TickResult reports what one tick did.
type TickResult struct {
	// Display is the value to show for this tick.
	Display int
	// Expired is set on the tick that reached zero while running.
	Expired bool
	// Skipped is set when the countdown was not running.
	Skipped bool
}

// NewCountdown returns a stopped countdown.
func NewCountdown() *Countdown {
	return &Countdown{state: StateStopped}
}

// Start begins a countdown of the given number of seconds.
func (c *Countdown) Start(seconds int) error {
	if seconds < 0 {
		return ErrInvalidDuration
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStopped {
		return ErrNotStopped
	}
	c.remaining = seconds
	c.state = StateRunning
	return nil
}

// Tick processes one second of time passing. The value shown is the one
// before the decrement; the tick that finds zero expires the countdown.
func (c *Countdown) Tick() TickResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return TickResult{Display: c.remaining, Skipped: true}
	}
	if c.remaining > 0 {
		shown := c.remaining
		c.remaining--
		return TickResult{Display: shown}
	}
	c.state = StateStopped
	return TickResult{Display: 0, Expired: true}
}

// Pause suspends a running countdown.
func (c *Countdown) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateRunning:
		c.state = StatePaused
		return nil
	case StatePaused:
		return nil
	}
	return ErrNotActive
}

// Resume continues a paused countdown.
func (c *Countdown) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StatePaused:
		c.state = StateRunning
		return nil
	case StateRunning:
		return nil
	}
	return ErrNotActive
}

// TogglePause switches between running and paused and returns the new state.
func (c *Countdown) TogglePause() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateRunning:
		c.state = StatePaused
	case StatePaused:
		c.state = StateRunning
	default:
		return c.state, ErrNotActive
	}
	return c.state, nil
}

// Stop resets the countdown to zero, whatever its state.
func (c *Countdown) Stop() {
	c.mu.Lock()
	c.state = StateStopped
	c.remaining = 0
	c.mu.Unlock()
}

// State returns the current state in a thread-safe manner.
func (c *Countdown) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Remaining returns the remaining seconds in a thread-safe manner.
func (c *Countdown) Remaining() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remaining
}

// GetSnapshot returns a consistent snapshot of the countdown for UI use.
func (c *Countdown) GetSnapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{State: c.state, Remaining: c.remaining}
}
