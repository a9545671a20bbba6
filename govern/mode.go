package govern

import (
	"fmt"
	"strings"
)

// Mode is the automation mode for an action. Modes form a total order
// (manual < copilot < autopilot); every comparison goes through Index,
// never through string ordering.
type Mode string

const (
	ModeManual    Mode = "manual"
	ModeCopilot   Mode = "copilot"
	ModeAutopilot Mode = "autopilot"
)

// InvalidModeError reports a mode value outside the three recognized
// modes. It should be unreachable with values built from the constants,
// but UI layers hand us untrusted strings, so the contract is explicit.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid automation mode: %q", e.Value)
}

var modeIndex = map[Mode]int{
	ModeManual:    0,
	ModeCopilot:   1,
	ModeAutopilot: 2,
}

// Index returns the position of m on the ladder (manual=0, copilot=1,
// autopilot=2).
func Index(m Mode) (int, error) {
	i, ok := modeIndex[m]
	if !ok {
		return 0, &InvalidModeError{Value: string(m)}
	}
	return i, nil
}

// Clamp returns requested if it is at or below ceiling, otherwise ceiling.
func Clamp(requested, ceiling Mode) (Mode, error) {
	ri, err := Index(requested)
	if err != nil {
		return "", err
	}
	ci, err := Index(ceiling)
	if err != nil {
		return "", err
	}
	if ri <= ci {
		return requested, nil
	}
	return ceiling, nil
}

// AtOrBelow reports whether a is no more automated than b.
func AtOrBelow(a, b Mode) (bool, error) {
	ai, err := Index(a)
	if err != nil {
		return false, err
	}
	bi, err := Index(b)
	if err != nil {
		return false, err
	}
	return ai <= bi, nil
}

// ParseMode normalizes an untrusted string (e.g. a CLI flag or a value
// coming back from a UI select) into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeIndex[m]; !ok {
		return "", &InvalidModeError{Value: s}
	}
	return m, nil
}
