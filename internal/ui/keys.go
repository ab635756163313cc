package ui

// Key identifies the special keys this viewer cares about.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // regular character
	KeyEnter
	KeyEscape
	KeyCtrlC
)

// KeyEvent represents a key press read from the terminal.
type KeyEvent struct {
	Key  Key
	Rune rune
	Ctrl bool
}

// IsQuit reports whether the event is the interrupt combination (Ctrl-C).
func (e KeyEvent) IsQuit() bool {
	return e.Key == KeyCtrlC || (e.Ctrl && e.Rune == 'c')
}
