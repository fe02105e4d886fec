// Package detector selects the endorsement driver for the current terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the driver used for the endorsement loop.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive one-keypress driver.
	ModeTUI
	// ModeLinear forces the line-based driver.
	ModeLinear
)

// String returns the flag value naming the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModeTUI when both stdin and stdout are terminals
// outside CI, and ModeLinear otherwise.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdin.Fd())), term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(stdinTTY, stdoutTTY bool, ci string) OutputMode {
	if !stdinTTY || !stdoutTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --output flag to the detected mode.
// userFlag should be one of: "auto", "tui", "linear", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
