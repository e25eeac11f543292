// Package control serializes every countdown transition on one goroutine.
// The UI sends Command messages; scheduled ticks are posted to the same
// queue, so the countdown is never mutated concurrently and ticks never
// overlap.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdResume
	CmdTogglePause
	CmdStop
	cmdTick
)

func (t CommandType) String() string {
	switch t {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdStop:
		return "stop"
	case cmdTick:
		return "tick"
	}
	return "unknown"
}

// Command is the message sent from the UI to Controller.Run. The optional
// Reply channel receives the outcome of the command.
type Command struct {
	Type    CommandType
	Seconds int        // for CmdStart
	Reply   chan error // optional reply channel

	seq uint64 // for cmdTick
}
