package tui

import (
	"Countdown/control"

	tea "github.com/charmbracelet/bubbletea"
)

// Frontend forwards controller events into a running bubbletea program.
type Frontend struct {
	program *tea.Program
}

func NewFrontend(p *tea.Program) *Frontend {
	return &Frontend{program: p}
}

func (f *Frontend) OnUpdate(u control.Update) {
	f.program.Send(updateMsg(u))
}

func (f *Frontend) OnFinished() {
	f.program.Send(finishedMsg{})
}

func (f *Frontend) Quit() {
	f.program.Quit()
}
