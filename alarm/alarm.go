// Package alarm plays the audible notification at the end of a countdown.
//
// A Player produces the sound once; Alarm repeats it the configured number
// of times. Two players exist: ExecPlayer shells out to an external command
// (afplay on macOS) and BeepPlayer decodes and plays the sound in process.
package alarm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Countdown/timer"
)

// ErrPlayback wraps every failure to produce the alarm sound.
var ErrPlayback = errors.New("alarm playback failed")

//go:generate mockgen -source=alarm.go -destination=mock_player_test.go -package=alarm

// Player plays the alarm sound once and returns when it has finished.
type Player interface {
	Play(ctx context.Context) error
}

// Alarm repeats a Player with a short pause after each play.
type Alarm struct {
	player      Player
	repetitions int
	gap         time.Duration
	sleep       func(context.Context, time.Duration) error
}

// New creates an alarm playing p repetitions times.
func New(p Player, repetitions int, gap time.Duration) *Alarm {
	return &Alarm{player: p, repetitions: repetitions, gap: gap, sleep: sleepCtx}
}

// NewFromConfig builds the player selected by cfg.Backend and wraps it.
func NewFromConfig(cfg timer.Config) (*Alarm, error) {
	var p Player
	switch cfg.Backend {
	case timer.BackendExec:
		p = NewExecPlayer(cfg.PlayerCommand, cfg.PlayerArgs, cfg.Volume, cfg.SoundFile)
	case timer.BackendBeep:
		bp, err := NewBeepPlayer(cfg.SoundFile, cfg.Volume)
		if err != nil {
			return nil, err
		}
		// Decode now so a bad file shows up at launch. Play retries the load.
		if _, err := bp.load(); err != nil {
			log.Printf("Failed to load alarm sound: %v", err)
		}
		p = bp
	default:
		return nil, fmt.Errorf("unknown alarm backend %q", cfg.Backend)
	}
	return New(p, cfg.Repetitions, cfg.RepeatGap), nil
}

// Ring plays the sound the configured number of times. The first failure
// ends the sequence.
func (a *Alarm) Ring(ctx context.Context) error {
	for i := 0; i < a.repetitions; i++ {
		if err := a.player.Play(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrPlayback, err)
		}
		if err := a.sleep(ctx, a.gap); err != nil {
			return err
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
