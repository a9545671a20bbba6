package clifmt

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func Headerf(format string, args ...any) string {
	text := fmt.Sprintf(format, args...)
	if !useColor() {
		return text
	}
	return "\x1b[1;36m" + text + "\x1b[0m"
}

func Success(text string) string {
	return colorize("32", text)
}

func Warn(text string) string {
	return colorize("33", text)
}

func Fail(text string) string {
	return colorize("31", text)
}

func Dim(text string) string {
	return colorize("2", text)
}

func Key(text string) string {
	return colorize("1;33", text)
}

// ModeBadge renders an automation mode with the color UI surfaces use for
// it: manual dim, copilot yellow, autopilot green.
func ModeBadge(mode string) string {
	switch mode {
	case "autopilot":
		return Success(mode)
	case "copilot":
		return Warn(mode)
	default:
		return Dim(mode)
	}
}

// StatusBadge renders a validation status: passed green, warning yellow,
// blocked red, everything else dim.
func StatusBadge(status string) string {
	switch status {
	case "passed":
		return Success(status)
	case "warning":
		return Warn(status)
	case "blocked":
		return Fail(status)
	default:
		return Dim(status)
	}
}

func colorize(code string, text string) string {
	if !useColor() {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

func useColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
