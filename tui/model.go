// Package tui is a terminal frontend for the countdown. It drives the same
// controller as the desktop window and renders with bubbletea.
package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controller is what the model needs from the countdown controller.
type Controller interface {
	Start(seconds int) error
	TogglePause() error
	Stop() error
}

type (
	updateMsg     control.Update
	finishedMsg   struct{}
	clearErrorMsg struct{ id int }
	resultMsg     struct {
		op  string
		err error
	}
)

// Model is the bubbletea model of the countdown screen.
type Model struct {
	cfg   timer.Config
	ctrl  Controller
	input textinput.Model

	entering bool
	errMsg   string
	errID    int
	update   control.Update
	finished bool
}

// NewModel returns a model showing the duration input.
func NewModel(cfg timer.Config, ctrl Controller) Model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("Enter a value")
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Focus()
	return Model{cfg: cfg, ctrl: ctrl, input: ti, entering: true}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.update = control.Update(msg)
		return m, nil
	case finishedMsg:
		m.finished = true
		return m, nil
	case clearErrorMsg:
		if msg.id == m.errID {
			m.errMsg = ""
		}
		return m, nil
	case resultMsg:
		if msg.err != nil {
			log.Printf("%s failed: %v", msg.op, msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.entering {
			return m.updateInput(msg)
		}
		return m.updateControls(msg)
	}

	if m.entering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateInput filters keystrokes the same way the desktop entry does.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.update.State != timer.StateStopped {
			m.entering = false
			m.input.Blur()
		}
		return m, nil
	case tea.KeySpace:
		return m, nil
	case tea.KeyRunes:
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var (
		insert  []rune
		confirm *timer.Unit
	)
	for _, r := range msg.Runes {
		action := timer.AcceptRune(r)
		if action == timer.KeyInsert {
			insert = append(insert, r)
			continue
		}
		if action == timer.KeyConfirmMinutes || action == timer.KeyConfirmSeconds {
			u := timer.UnitSeconds
			if action == timer.KeyConfirmMinutes {
				u = timer.UnitMinutes
			}
			confirm = &u
			break
		}
	}

	var cmd tea.Cmd
	if len(insert) > 0 {
		m.input, cmd = m.input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: insert})
	}
	if confirm != nil {
		return m.submit(*confirm)
	}
	return m, cmd
}

func (m Model) submit(u timer.Unit) (tea.Model, tea.Cmd) {
	seconds, err := timer.ParseDuration(m.input.Value(), u)
	switch {
	case errors.Is(err, timer.ErrEmptyInput):
		return m, nil
	case err != nil:
		return m.showError(i18n.T("Please enter a valid number greater than 0"))
	}

	m.entering = false
	m.finished = false
	m.input.Blur()
	ctrl := m.ctrl
	return m, func() tea.Msg {
		return resultMsg{op: "Start", err: ctrl.Start(seconds)}
	}
}

func (m Model) showError(msg string) (tea.Model, tea.Cmd) {
	m.errID++
	id := m.errID
	m.errMsg = msg
	return m, tea.Tick(m.cfg.ErrorDismiss, func(time.Time) tea.Msg {
		return clearErrorMsg{id: id}
	})
}

func (m Model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	active := m.update.State == timer.StateRunning || m.update.State == timer.StatePaused
	ctrl := m.ctrl

	switch strings.ToLower(key) {
	case "p", " ":
		if active {
			return m, func() tea.Msg { return resultMsg{op: "Pause", err: ctrl.TogglePause()} }
		}
	case "s":
		if active {
			return m, func() tea.Msg { return resultMsg{op: "Stop", err: ctrl.Stop()} }
		}
	case "n", "enter":
		if !active {
			m.entering = true
			m.input.Reset()
			return m, m.input.Focus()
		}
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("Timer")))
	b.WriteString("\n\n")

	clock := clockStyle
	if m.update.State == timer.StatePaused {
		clock = pausedClockStyle
	}
	b.WriteString(clock.Render(timer.FormatTime(m.update.Display)))
	b.WriteString("\n")

	status := m.update.State.String()
	if m.finished {
		status = i18n.T("Time is up")
	}
	b.WriteString(stateStyle.Render(status))
	b.WriteString("\n")

	if m.entering {
		b.WriteString("\n")
		b.WriteString(i18n.T("Enter the time and press:\n'D' for minutes\n'F' for seconds"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render(m.errMsg))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render(m.help()))

	pad := int(m.cfg.Padding / 10)
	return lipgloss.NewStyle().Padding(pad/2, pad).Render(b.String())
}

func (m Model) help() string {
	pause := i18n.T("Pause")
	if m.update.State == timer.StatePaused {
		pause = i18n.T("Resume")
	}
	if m.entering {
		return fmt.Sprintf("ctrl+c %s", strings.ToLower(i18n.T("Quit")))
	}
	return fmt.Sprintf("n %s · p %s · s %s · q %s",
		strings.ToLower(i18n.T("Start")),
		strings.ToLower(pause),
		strings.ToLower(i18n.T("Stop")),
		strings.ToLower(i18n.T("Quit")))
}
