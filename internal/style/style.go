// Package style defines the color and styled-text values the layout engine
// produces and the terminal surface consumes.
package style

import "github.com/mattn/go-runewidth"

// Color represents a terminal color.
// Values 0-15 are palette colors; RGB colors carry a marker bit.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorGray    Color = 7
	ColorWhite   Color = 15
)

// RGBColor creates a true color from RGB components.
func RGBColor(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | 0x01000000)
}

// IsRGB returns true if this is a true color (not palette or default).
func (c Color) IsRGB() bool {
	return c >= 0 && c&0x01000000 != 0
}

// RGB returns the components of a true color, or zeros for palette colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// Style is a foreground/background color pair for a run of text.
type Style struct {
	fg Color
	bg Color
}

// Default returns the terminal's default style.
func Default() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Decompose returns the foreground and background colors.
func (s Style) Decompose() (fg, bg Color) {
	return s.fg, s.bg
}

// Span is a run of text rendered with a single style.
type Span struct {
	Text  string
	Style Style
}

// Raw returns an unstyled span.
func Raw(text string) Span {
	return Span{Text: text, Style: Default()}
}

// Styled returns a span with the given style.
func Styled(text string, s Style) Span {
	return Span{Text: text, Style: s}
}

// Line is one terminal row as an ordered sequence of spans.
type Line []Span

// Width returns the number of columns the line occupies.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// String returns the line's text without styling, for tests and debugging.
func (l Line) String() string {
	var out string
	for _, s := range l {
		out += s.Text
	}
	return out
}
