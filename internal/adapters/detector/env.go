// Package detector selects how packaging progress is shown.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the progress rendering mode.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeLinear prints one line per phase event.
	ModeLinear
	// ModeQuiet prints no progress.
	ModeQuiet
	// ModeTUI redraws a live phase list in place.
	ModeTUI
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeQuiet:
		return "quiet"
	case ModeTUI:
		return "tui"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the mode suited to the current process.
// CI logs get linear progress and interactive terminals get the TUI. Output
// piped elsewhere, such as a build action log, stays quiet.
func DetectEnvironment() OutputMode {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModeLinear
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeTUI
	}
	return ModeQuiet
}

// ResolveMode applies the --progress flag to the detected mode.
// userFlag is one of "auto", "tui", "linear", "ci", "quiet" or empty; anything else
// falls back to autoDetected.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "linear", "ci":
		return ModeLinear
	case "quiet":
		return ModeQuiet
	case "tui":
		return ModeTUI
	default:
		return autoDetected
	}
}
