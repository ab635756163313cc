// Package ui wraps tcell behind the small surface the render loop needs:
// raw-mode setup and teardown, a key-event stream, and a bottom-anchored
// draw of styled lines.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/john/chatview/internal/style"
)

// Screen owns the terminal for the lifetime of the process. Init acquires
// raw mode and Fini releases it; Fini must run on every exit path.
type Screen struct {
	tc   tcell.Screen
	keys chan KeyEvent
}

// New creates a screen on the real terminal.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	return NewWithScreen(tc), nil
}

// NewWithScreen creates a screen over an existing tcell screen (for testing).
func NewWithScreen(tc tcell.Screen) *Screen {
	return &Screen{tc: tc, keys: make(chan KeyEvent, 8)}
}

// Init enters raw mode, clears the terminal and starts key polling.
func (s *Screen) Init() error {
	if err := s.tc.Init(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.tc.HideCursor()
	s.tc.Clear()
	go s.pollKeys()
	return nil
}

// Fini restores the terminal to its normal state. The key-event channel
// closes once the poll loop observes the shutdown.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns the terminal dimensions in columns and rows.
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// Keys returns the stream of key presses. Closed after Fini.
func (s *Screen) Keys() <-chan KeyEvent {
	return s.keys
}

// Draw repaints the whole viewport with the given lines anchored at the
// bottom: lines[0] is the bottom row, lines[1] the row above it, and so on.
// Lines beyond the top edge are discarded.
func (s *Screen) Draw(lines []style.Line) error {
	width, height := s.tc.Size()
	s.tc.Clear()
	for i, line := range lines {
		y := height - 1 - i
		if y < 0 {
			break
		}
		x := 0
		for _, span := range line {
			st := convertStyle(span.Style)
			for _, r := range span.Text {
				if x >= width {
					break
				}
				s.tc.SetContent(x, y, r, nil, st)
				x += runewidth.RuneWidth(r)
			}
		}
	}
	s.tc.Show()
	return nil
}

func (s *Screen) pollKeys() {
	defer close(s.keys)
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			// Fini was called.
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			s.keys <- convertKey(e)
		case *tcell.EventResize:
			// The next tick re-reads Size; just repaint cleanly.
			s.tc.Sync()
		}
	}
}

// convertKey converts a tcell key event to a ui.KeyEvent.
func convertKey(e *tcell.EventKey) KeyEvent {
	k := KeyEvent{Rune: e.Rune(), Ctrl: e.Modifiers()&tcell.ModCtrl != 0}
	switch e.Key() {
	case tcell.KeyRune:
		k.Key = KeyRune
	case tcell.KeyEnter:
		k.Key = KeyEnter
	case tcell.KeyEscape:
		k.Key = KeyEscape
	case tcell.KeyCtrlC:
		k.Key = KeyCtrlC
	default:
		k.Key = KeyNone
	}
	return k
}

// convertStyle converts style.Style to tcell.Style.
func convertStyle(st style.Style) tcell.Style {
	fg, bg := st.Decompose()
	return tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))
}

// convertColor converts style.Color to tcell.Color.
func convertColor(c style.Color) tcell.Color {
	if c == style.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}
