package control

import "time"

// Timer is a pending single-shot callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules single-shot callbacks. Tests replace it with a manual
// clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the default Clock backed by time.AfterFunc.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
