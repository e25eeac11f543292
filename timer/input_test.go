package timer

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		unit  Unit
		want  int
		err   error
	}{
		{"5", UnitMinutes, 300, nil},
		{"90", UnitSeconds, 90, nil},
		{"1.5", UnitMinutes, 90, nil},
		{"2.75", UnitSeconds, 2, nil},
		{"0.01", UnitMinutes, 0, nil},
		{"0.5", UnitSeconds, 0, nil},
		{"-3", UnitSeconds, 0, ErrInvalidDuration},
		{"0", UnitMinutes, 0, ErrInvalidDuration},
		{"0.0", UnitSeconds, 0, ErrInvalidDuration},
		{"abc", UnitSeconds, 0, ErrInvalidDuration},
		{"1.", UnitSeconds, 0, ErrInvalidDuration},
		{"1e3", UnitSeconds, 0, ErrInvalidDuration},
		{"", UnitSeconds, 0, ErrEmptyInput},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.input, tt.unit)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseDuration(%q): expected %v, got %v", tt.input, tt.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDuration(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestAcceptRune(t *testing.T) {
	tests := map[rune]KeyAction{
		'd': KeyConfirmMinutes,
		'D': KeyConfirmMinutes,
		'f': KeyConfirmSeconds,
		'F': KeyConfirmSeconds,
		'0': KeyInsert,
		'7': KeyInsert,
		'.': KeyInsert,
		'-': KeySuppress,
		'x': KeySuppress,
		' ': KeySuppress,
	}
	for r, want := range tests {
		if got := AcceptRune(r); got != want {
			t.Fatalf("AcceptRune(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := map[int]string{
		0:     "00:00:00",
		59:    "00:00:59",
		90:    "00:01:30",
		3600:  "01:00:00",
		3661:  "01:01:01",
		86399: "23:59:59",
		-5:    "00:00:00",
	}
	for sec, want := range tests {
		if got := FormatTime(sec); got != want {
			t.Fatalf("FormatTime(%d) = %s, want %s", sec, got, want)
		}
	}
}

func TestNewConfigOptions(t *testing.T) {
	c := NewConfig(
		WithSoundFile("/tmp/ding.wav"),
		WithVolume("2"),
		WithRepetitions(-4),
		WithPlayer("paplay", "{file}"),
		WithWindowSize(640, 480),
		WithExitOnFinish(false),
	)
	if c.SoundFile != "/tmp/ding.wav" || c.Volume != "2" {
		t.Fatalf("unexpected sound settings: %+v", c)
	}
	if c.Repetitions != 0 {
		t.Fatalf("expected negative repetitions to clamp to 0, got %d", c.Repetitions)
	}
	if c.PlayerCommand != "paplay" || len(c.PlayerArgs) != 1 || c.PlayerArgs[0] != "{file}" {
		t.Fatalf("unexpected player: %s %v", c.PlayerCommand, c.PlayerArgs)
	}
	if c.WindowWidth != 640 || c.WindowHeight != 480 {
		t.Fatalf("unexpected window size %vx%v", c.WindowWidth, c.WindowHeight)
	}
	if c.ExitOnFinish {
		t.Fatalf("expected ExitOnFinish to be false")
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Volume != "4" || c.Repetitions != 3 {
		t.Fatalf("unexpected alarm defaults: %+v", c)
	}
	if c.ErrorDismiss.Seconds() != 2 || c.ExitDelay.Seconds() != 1 {
		t.Fatalf("unexpected delays: %v %v", c.ErrorDismiss, c.ExitDelay)
	}
}
