package alarm

import "github.com/gen2brain/beeep"

// Notifier posts a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends notifications through the platform notification
// service.
type DesktopNotifier struct{}

// Notify shows a notification without an icon.
func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}
