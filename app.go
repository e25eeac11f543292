// Package main contains the application wiring and the AppManager which
// connects the countdown controller, the alarm and the active frontend.
//
// Concurrency model: the controller runs a single command-loop goroutine that
// owns the countdown. Frontend callbacks (OnUpdate, OnFinished) arrive on that
// goroutine; the desktop window marshals them with fyne.Do and the terminal
// frontend with Program.Send. The alarm rings synchronously inside the loop,
// so commands sent while it plays wait or time out.
package main

import (
	"context"
	"log"
	"sync"
	"time"

	"Countdown/alarm"
	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"
)

// Frontend is the view the AppManager forwards controller events to.
type Frontend interface {
	control.Listener
	Quit()
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	cfg        timer.Config
	controller *control.Controller
	notifier   alarm.Notifier
	frontend   Frontend
	afterFunc  func(time.Duration, func())

	quitOnce sync.Once
}

// NewAppManager builds the alarm and the controller for cfg.
func NewAppManager(cfg timer.Config) (*AppManager, error) {
	al, err := alarm.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("Alarm: %s backend, %d repetitions, volume %s", cfg.Backend, cfg.Repetitions, cfg.Volume)

	a := &AppManager{
		cfg:        cfg,
		controller: control.New(timer.NewCountdown(), al, control.SystemClock),
		afterFunc:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
	if cfg.Notify {
		a.notifier = alarm.DesktopNotifier{}
	}
	a.controller.SetListener(a)
	return a, nil
}

// Controller returns the countdown controller used by the frontends.
func (a *AppManager) Controller() *control.Controller {
	return a.controller
}

// SetFrontend attaches the view. It must be called before Run.
func (a *AppManager) SetFrontend(f Frontend) {
	a.frontend = f
}

// Run starts the command loop in the background.
func (a *AppManager) Run(ctx context.Context) {
	go a.controller.Run(ctx)
}

func (a *AppManager) OnUpdate(u control.Update) {
	if a.frontend != nil {
		a.frontend.OnUpdate(u)
	}
}

// OnFinished runs after the alarm. The application quits ExitDelay later
// unless ExitOnFinish is disabled.
func (a *AppManager) OnFinished() {
	if a.notifier != nil {
		if err := a.notifier.Notify(i18n.T("Timer"), i18n.T("Time is up")); err != nil {
			log.Printf("Failed to send notification: %v", err)
		}
	}
	if a.frontend != nil {
		a.frontend.OnFinished()
	}
	if a.cfg.ExitOnFinish {
		a.afterFunc(a.cfg.ExitDelay, a.Shutdown)
	}
}

// Shutdown asks the frontend to quit. It is safe to call more than once.
func (a *AppManager) Shutdown() {
	a.quitOnce.Do(func() {
		if a.frontend != nil {
			a.frontend.Quit()
		}
	})
}
