package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how results should be presented on the current terminal.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without taking over the screen.
	OutputModeStyled
	// OutputModeInteractive can run a full Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// terminalEnv is the subset of the process environment mode detection reads.
type terminalEnv struct {
	lookupEnv   func(string) (string, bool)
	stdinIsTTY  bool
	stdoutIsTTY bool
}

// DetectOutputMode inspects stdin, stdout and the environment.
// plain and noColor force OutputModePlain; forceColor yields at least
// OutputModeStyled even when stdout is redirected.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, terminalEnv{
		lookupEnv:   os.LookupEnv,
		stdinIsTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutIsTTY: term.IsTerminal(int(os.Stdout.Fd())),
	})
}

func detectOutputMode(forceColor, noColor, plain bool, env terminalEnv) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := env.lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, _ := env.lookupEnv("TERM"); v == "dumb" {
		return OutputModePlain
	}
	if !env.stdoutIsTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if _, ci := env.lookupEnv("CI"); ci || !env.stdinIsTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the width of stdout, or defaultWidth when it is not
// a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
