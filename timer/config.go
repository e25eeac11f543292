package timer

import (
	"runtime"
	"time"
)

// State defines the possible states of the countdown.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Unit is the unit the user confirmed the entered value with.
type Unit int

const (
	UnitSeconds Unit = iota
	UnitMinutes
)

// Backend selects how the alarm sound is produced.
type Backend string

const (
	BackendExec Backend = "exec"
	BackendBeep Backend = "beep"
)

// TickInterval is the fixed delay between two ticks.
const TickInterval = time.Second

// Config holds the static configuration of the application. It is built once
// at startup and never mutated afterwards.
type Config struct {
	SoundFile     string
	Volume        string
	Repetitions   int
	RepeatGap     time.Duration
	Backend       Backend
	PlayerCommand string
	PlayerArgs    []string

	WindowWidth    float32
	WindowHeight   float32
	DialogWidth    float32
	DialogHeight   float32
	FontSizeLarge  float32
	FontSizeNormal float32
	Padding        float32

	ErrorDismiss time.Duration
	ExitDelay    time.Duration
	ExitOnFinish bool
	Notify       bool
}

// Option overrides one field of the default configuration.
type Option func(*Config)

// DefaultConfig returns the defaults for the current platform. macOS plays
// the system Ping sound through afplay, other systems use the built-in tone.
func DefaultConfig() Config {
	c := Config{
		Volume:         "4",
		Repetitions:    3,
		RepeatGap:      100 * time.Millisecond,
		Backend:        BackendBeep,
		PlayerCommand:  "afplay",
		PlayerArgs:     []string{"-v", "{volume}", "{file}"},
		WindowWidth:    400,
		WindowHeight:   300,
		DialogWidth:    300,
		DialogHeight:   200,
		FontSizeLarge:  48,
		FontSizeNormal: 14,
		Padding:        20,
		ErrorDismiss:   2 * time.Second,
		ExitDelay:      time.Second,
		ExitOnFinish:   true,
	}
	if runtime.GOOS == "darwin" {
		c.SoundFile = "/System/Library/Sounds/Ping.aiff"
		c.Backend = BackendExec
	}
	return c
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.Repetitions < 0 {
		c.Repetitions = 0
	}
	c.PlayerArgs = append([]string(nil), c.PlayerArgs...)
	return c
}

func WithSoundFile(path string) Option { return func(c *Config) { c.SoundFile = path } }

func WithVolume(v string) Option { return func(c *Config) { c.Volume = v } }

func WithRepetitions(n int) Option { return func(c *Config) { c.Repetitions = n } }

func WithBackend(b Backend) Option { return func(c *Config) { c.Backend = b } }

// WithPlayer sets the external command used by the exec backend. Arguments
// may contain the {volume} and {file} placeholders.
func WithPlayer(command string, args ...string) Option {
	return func(c *Config) {
		c.PlayerCommand = command
		if len(args) > 0 {
			c.PlayerArgs = args
		}
	}
}

func WithWindowSize(w, h float32) Option {
	return func(c *Config) {
		c.WindowWidth = w
		c.WindowHeight = h
	}
}

func WithFontSizes(large, normal float32) Option {
	return func(c *Config) {
		c.FontSizeLarge = large
		c.FontSizeNormal = normal
	}
}

func WithPadding(p float32) Option { return func(c *Config) { c.Padding = p } }

// WithExitOnFinish controls whether the application quits after the alarm.
func WithExitOnFinish(exit bool) Option { return func(c *Config) { c.ExitOnFinish = exit } }

func WithNotify(enabled bool) Option { return func(c *Config) { c.Notify = enabled } }
