package tui

// Key bindings, as reported by tea.KeyMsg.String().
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyCtrlS    = "ctrl+s"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyUp       = "up"
	keyDown     = "down"
	keyS        = "s"
	keyB        = "b"
	keyP        = "p"
	keyN        = "n"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)
