package ui

import (
	"errors"
	"image/color"
	"log"
	"sync"
	"time"

	"Countdown/i18n"
	"Countdown/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var errorColor = color.NRGBA{R: 0xff, G: 0x45, B: 0x45, A: 0xff}

// durationEntry only accepts digits and the decimal point. D and F confirm
// the value as minutes or seconds.
type durationEntry struct {
	widget.Entry
	onConfirm func(timer.Unit)
}

func newDurationEntry(onConfirm func(timer.Unit)) *durationEntry {
	e := &durationEntry{onConfirm: onConfirm}
	e.ExtendBaseWidget(e)
	return e
}

func (e *durationEntry) TypedRune(r rune) {
	switch timer.AcceptRune(r) {
	case timer.KeyInsert:
		e.Entry.TypedRune(r)
	case timer.KeyConfirmMinutes:
		e.confirm(timer.UnitMinutes)
	case timer.KeyConfirmSeconds:
		e.confirm(timer.UnitSeconds)
	}
}

func (e *durationEntry) confirm(u timer.Unit) {
	if e.onConfirm != nil {
		e.onConfirm(u)
	}
}

type stopper interface {
	Stop() bool
}

func afterFunc(d time.Duration, fn func()) stopper {
	return time.AfterFunc(d, fn)
}

// inputForm is the content of the modal time input dialog.
type inputForm struct {
	cfg     timer.Config
	submit  func(seconds int) error
	entry   *durationEntry
	errText *canvas.Text
	content fyne.CanvasObject
	dialog  dialog.Dialog
	after   func(time.Duration, func()) stopper

	mu       sync.Mutex
	errTimer stopper
}

func newInputForm(cfg timer.Config, submit func(seconds int) error) *inputForm {
	f := &inputForm{cfg: cfg, submit: submit, after: afterFunc}

	f.entry = newDurationEntry(f.confirm)
	f.entry.SetPlaceHolder(i18n.T("Enter a value"))

	f.errText = canvas.NewText("", errorColor)
	f.errText.Alignment = fyne.TextAlignCenter
	f.errText.TextSize = cfg.FontSizeNormal
	f.errText.Hide()

	instructions := widget.NewLabel(i18n.T("Enter the time and press:\n'D' for minutes\n'F' for seconds"))

	f.content = container.NewPadded(container.NewVBox(
		instructions,
		f.entry,
		f.errText,
	))
	return f
}

func (f *inputForm) confirm(u timer.Unit) {
	seconds, err := timer.ParseDuration(f.entry.Text, u)
	switch {
	case errors.Is(err, timer.ErrEmptyInput):
		return
	case err != nil:
		f.showError(i18n.T("Please enter a valid number greater than 0"))
		return
	}

	if err := f.submit(seconds); err != nil {
		log.Printf("Failed to start countdown: %v", err)
		return
	}
	if f.dialog != nil {
		f.dialog.Hide()
	}
}

// showError displays msg until ErrorDismiss has elapsed.
func (f *inputForm) showError(msg string) {
	f.errText.Text = msg
	f.errText.Show()
	f.errText.Refresh()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errTimer != nil {
		f.errTimer.Stop()
	}
	f.errTimer = f.after(f.cfg.ErrorDismiss, func() {
		fyne.Do(f.errText.Hide)
	})
}
