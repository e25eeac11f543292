package timer

import (
	"errors"
	"regexp"
	"strconv"
	"unicode"
)

var (
	// ErrInvalidDuration reports a malformed or non-positive entry.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrEmptyInput reports a confirmation with nothing typed.
	ErrEmptyInput = errors.New("empty input")
)

var inputPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// KeyAction is what the input form does with a typed rune.
type KeyAction int

const (
	KeySuppress KeyAction = iota
	KeyInsert
	KeyConfirmMinutes
	KeyConfirmSeconds
)

// AcceptRune classifies a keystroke typed into the input form.
func AcceptRune(r rune) KeyAction {
	switch unicode.ToLower(r) {
	case 'd':
		return KeyConfirmMinutes
	case 'f':
		return KeyConfirmSeconds
	}
	if (r >= '0' && r <= '9') || r == '.' {
		return KeyInsert
	}
	return KeySuppress
}

// ValidInput reports whether s is an unsigned number with an optional
// decimal part.
func ValidInput(s string) bool {
	return inputPattern.MatchString(s)
}

// ParseDuration converts the entered text into whole seconds. Minutes are
// multiplied by 60; the result is truncated.
func ParseDuration(input string, unit Unit) (int, error) {
	if input == "" {
		return 0, ErrEmptyInput
	}
	if !ValidInput(input) {
		return 0, ErrInvalidDuration
	}
	val, err := strconv.ParseFloat(input, 64)
	if err != nil || val <= 0 {
		return 0, ErrInvalidDuration
	}
	if unit == UnitMinutes {
		val *= 60
	}
	return int(val), nil
}
