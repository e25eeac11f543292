package timer

import (
	"fmt"
)

// FormatTime converts a number of seconds into a HH:MM:SS string.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec%3600)/60, sec%60)
}
