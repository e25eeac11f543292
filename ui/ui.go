package ui

import (
	"image/color"
	"log"

	"Countdown/control"
	"Countdown/i18n"
	"Countdown/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// App is what the window needs from the countdown controller.
type App interface {
	Start(seconds int) error
	TogglePause() error
	Stop() error
}

// MainWindow holds the display and the three control buttons.
type MainWindow struct {
	app     App
	cfg     timer.Config
	fyneApp fyne.App
	window  fyne.Window

	timeText    *canvas.Text
	startButton *widget.Button
	pauseButton *widget.Button
	stopButton  *widget.Button
	form        *inputForm
}

// CreateMainWindow builds the main window in the stopped state.
func CreateMainWindow(a App, fyneApp fyne.App, cfg timer.Config) *MainWindow {
	m := &MainWindow{app: a, cfg: cfg, fyneApp: fyneApp}
	m.window = fyneApp.NewWindow(i18n.T("Timer"))

	m.timeText = canvas.NewText(timer.FormatTime(0), color.White)
	m.timeText.TextStyle.Bold = true
	m.timeText.TextSize = cfg.FontSizeLarge
	m.timeText.Alignment = fyne.TextAlignCenter

	m.startButton = widget.NewButton(i18n.T("Start"), m.ShowTimeInput)
	m.pauseButton = widget.NewButton(i18n.T("Pause"), func() {
		if err := a.TogglePause(); err != nil {
			log.Printf("Pause failed: %v", err)
		}
	})
	m.stopButton = widget.NewButton(i18n.T("Stop"), func() {
		if err := a.Stop(); err != nil {
			log.Printf("Stop failed: %v", err)
		}
	})

	buttons := container.NewHBox(
		layout.NewSpacer(),
		m.startButton,
		m.pauseButton,
		m.stopButton,
		layout.NewSpacer(),
	)

	m.window.SetContent(container.NewVBox(
		spacer(cfg.Padding),
		layout.NewSpacer(),
		m.timeText,
		layout.NewSpacer(),
		buttons,
		spacer(cfg.Padding),
	))
	m.window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	m.render(control.Update{State: timer.StateStopped})
	return m
}

// Window returns the underlying fyne window.
func (m *MainWindow) Window() fyne.Window {
	return m.window
}

// ShowTimeInput opens the modal duration dialog.
func (m *MainWindow) ShowTimeInput() {
	m.form = newInputForm(m.cfg, m.app.Start)
	d := dialog.NewCustom(i18n.T("Enter Time"), i18n.T("Cancel"), m.form.content, m.window)
	d.Resize(fyne.NewSize(m.cfg.DialogWidth, m.cfg.DialogHeight))
	m.form.dialog = d
	d.Show()
	m.window.Canvas().Focus(m.form.entry)
}

// OnUpdate refreshes the display from the controller goroutine.
func (m *MainWindow) OnUpdate(u control.Update) {
	fyne.Do(func() { m.render(u) })
}

// OnFinished brings the window to the front once the alarm has played.
func (m *MainWindow) OnFinished() {
	fyne.Do(m.window.RequestFocus)
}

// Quit closes the application.
func (m *MainWindow) Quit() {
	fyne.Do(m.fyneApp.Quit)
}

func (m *MainWindow) render(u control.Update) {
	m.timeText.Text = timer.FormatTime(u.Display)
	m.timeText.Refresh()

	switch u.State {
	case timer.StateRunning, timer.StatePaused:
		m.startButton.Disable()
		m.pauseButton.Enable()
		m.stopButton.Enable()
	default:
		m.startButton.Enable()
		m.pauseButton.Disable()
		m.stopButton.Disable()
	}

	if u.State == timer.StatePaused {
		m.pauseButton.SetText(i18n.T("Resume"))
	} else {
		m.pauseButton.SetText(i18n.T("Pause"))
	}
}

func spacer(height float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(0, height))
	return r
}
