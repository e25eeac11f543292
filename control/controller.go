package control

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Countdown/timer"
)

const (
	enqueueTimeout = 150 * time.Millisecond
	replyTimeout   = 200 * time.Millisecond
)

// ErrTimeout is returned by Do when the command loop did not answer in time,
// for instance while the alarm is ringing.
var ErrTimeout = errors.New("command timed out")

//go:generate mockgen -source=controller.go -destination=mock_alarm_test.go -package=control

// Alarm rings once per finished countdown.
type Alarm interface {
	Ring(ctx context.Context) error
}

// Update is published after every change visible to the user.
type Update struct {
	State     timer.State
	Display   int // seconds shown on the clock
	Remaining int
}

// Listener receives updates on the controller goroutine.
type Listener interface {
	OnUpdate(Update)
	OnFinished()
}

// Controller owns the countdown and drives its ticks.
type Controller struct {
	countdown *timer.Countdown
	alarm     Alarm
	clock     Clock
	listener  Listener
	cmdCh     chan Command

	// owned by the Run goroutine
	pending Timer
	seq     uint64
	display int
	tickNow bool
}

// New creates a controller. Call SetListener before Run.
func New(cd *timer.Countdown, a Alarm, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock
	}
	return &Controller{
		countdown: cd,
		alarm:     a,
		clock:     clock,
		cmdCh:     make(chan Command, 256),
	}
}

// SetListener registers the view notified of every change.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// Run processes commands until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) {
	defer c.cancelPending()
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.cmdCh:
			c.dispatch(ctx, cmd)
		}
	}
}

// dispatch handles cmd and answers its Reply before running the first tick
// of a fresh countdown, so a countdown that expires at once (and rings the
// alarm) still reports a successful start.
func (c *Controller) dispatch(ctx context.Context, cmd Command) error {
	err := c.handle(ctx, cmd)
	if err != nil && cmd.Type != cmdTick {
		log.Printf("Command %s rejected: %v", cmd.Type, err)
	}
	if cmd.Reply != nil {
		select {
		case cmd.Reply <- err:
		default:
		}
	}
	if c.tickNow {
		c.tickNow = false
		c.tick(ctx)
	}
	return err
}

// Enqueue posts a command to the command loop without blocking the UI for
// long. If the queue stays full past a short timeout the command is dropped.
func (c *Controller) Enqueue(cmd Command) {
	select {
	case c.cmdCh <- cmd:
	case <-time.After(enqueueTimeout):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

// Do enqueues cmd and waits briefly for its outcome.
func (c *Controller) Do(cmd Command) error {
	reply := make(chan error, 1)
	cmd.Reply = reply
	c.Enqueue(cmd)
	select {
	case err := <-reply:
		return err
	case <-time.After(replyTimeout):
		return ErrTimeout
	}
}

// Start begins a countdown of seconds.
func (c *Controller) Start(seconds int) error {
	return c.Do(Command{Type: CmdStart, Seconds: seconds})
}

// TogglePause pauses a running countdown or resumes a paused one.
func (c *Controller) TogglePause() error {
	return c.Do(Command{Type: CmdTogglePause})
}

// Stop resets the countdown.
func (c *Controller) Stop() error {
	return c.Do(Command{Type: CmdStop})
}

func (c *Controller) handle(ctx context.Context, cmd Command) error {
	switch cmd.Type {
	case CmdStart:
		if err := c.countdown.Start(cmd.Seconds); err != nil {
			return err
		}
		log.Printf("Countdown started: %s", timer.FormatTime(cmd.Seconds))
		c.tickNow = true
	case CmdPause:
		if err := c.countdown.Pause(); err != nil {
			return err
		}
		c.cancelPending()
		c.publish()
	case CmdResume:
		if err := c.countdown.Resume(); err != nil {
			return err
		}
		c.schedule(ctx)
		c.publish()
	case CmdTogglePause:
		state, err := c.countdown.TogglePause()
		if err != nil {
			return err
		}
		if state == timer.StatePaused {
			c.cancelPending()
		} else {
			c.schedule(ctx)
		}
		c.publish()
	case CmdStop:
		c.cancelPending()
		c.countdown.Stop()
		c.display = 0
		c.publish()
	case cmdTick:
		if c.pending == nil || cmd.seq != c.seq {
			return nil // stale
		}
		c.pending = nil
		c.tick(ctx)
	default:
		return fmt.Errorf("unknown command %d", cmd.Type)
	}
	return nil
}

func (c *Controller) tick(ctx context.Context) {
	res := c.countdown.Tick()
	if res.Skipped {
		return
	}
	c.display = res.Display
	c.publish()
	if !res.Expired {
		c.schedule(ctx)
		return
	}

	log.Println("Countdown finished")
	if c.alarm != nil {
		if err := c.alarm.Ring(ctx); err != nil {
			log.Printf("Error playing alarm sound: %v", err)
		}
	}
	if c.listener != nil {
		c.listener.OnFinished()
	}
}

// schedule arms the next tick unless one is already pending.
func (c *Controller) schedule(ctx context.Context) {
	if c.pending != nil {
		return
	}
	c.seq++
	seq := c.seq
	c.pending = c.clock.AfterFunc(timer.TickInterval, func() {
		select {
		case c.cmdCh <- Command{Type: cmdTick, seq: seq}:
		case <-ctx.Done():
		}
	})
}

func (c *Controller) cancelPending() {
	if c.pending == nil {
		return
	}
	c.pending.Stop()
	c.pending = nil
	c.seq++
}

func (c *Controller) publish() {
	if c.listener == nil {
		return
	}
	snap := c.countdown.GetSnapshot()
	c.listener.OnUpdate(Update{State: snap.State, Display: c.display, Remaining: snap.Remaining})
}
