// Package layout turns chat messages into word-wrapped styled terminal lines.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/john/chatview/internal/message"
	"github.com/john/chatview/internal/style"
)

// BadgeStyle is the rendered symbol for one badge kind and the number of
// terminal columns it occupies.
type BadgeStyle struct {
	Symbol string
	Width  int
}

// Config holds the resolved badge symbols and the brightness threshold
// below which sender colors get a contrasting background. Immutable after
// configuration load.
type Config struct {
	Subscriber  BadgeStyle
	Founder     BadgeStyle
	Moderator   BadgeStyle
	VIP         BadgeStyle
	InvertBelow uint8
}

// Luminance returns the relative luminance of c on a 0-255 scale.
func Luminance(c message.RGB) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// Message lays out one chat message for a terminal of the given column
// width. The first line carries badges, the styled sender name and ": ";
// continuation lines are padded to the same prefix width so the body keeps
// a stable left margin. A nonsensical width is clamped, never an error.
func Message(m message.Message, width int, cfg Config) []style.Line {
	if width < 0 {
		width = 0
	}

	badges, badgeWidth := cfg.badgePrefix(m.Badges)
	prefixWidth := runewidth.StringWidth(m.Sender) + len(": ") + badgeWidth
	bodyWidth := width - prefixWidth
	if bodyWidth < 1 {
		// Keep wrapping meaningful even when the prefix alone overflows.
		bodyWidth = 1
	}

	segments := wrapBody(m.Text, bodyWidth)

	nameStyle := style.Default()
	if m.Color != nil {
		nameStyle = nameStyle.Foreground(style.RGBColor(m.Color.R, m.Color.G, m.Color.B))
		if Luminance(*m.Color) < float64(cfg.InvertBelow) {
			nameStyle = nameStyle.Background(style.ColorGray)
		}
	}

	lines := make([]style.Line, 0, len(segments))
	lines = append(lines, style.Line{
		style.Raw(badges),
		style.Styled(m.Sender, nameStyle),
		style.Raw(": "),
		style.Raw(segments[0]),
	})

	pad := strings.Repeat(" ", prefixWidth)
	for _, seg := range segments[1:] {
		lines = append(lines, style.Line{style.Raw(pad), style.Raw(seg)})
	}
	return lines
}

// badgePrefix concatenates the symbols for the badges present in b, in a
// fixed order regardless of how the platform reported them, and returns the
// total column width they occupy.
func (c Config) badgePrefix(b message.Badges) (string, int) {
	var sb strings.Builder
	width := 0
	for _, entry := range []struct {
		present bool
		badge   BadgeStyle
	}{
		{b.Subscriber, c.Subscriber},
		{b.Founder, c.Founder},
		{b.Moderator, c.Moderator},
		{b.VIP, c.VIP},
	} {
		if entry.present {
			sb.WriteString(entry.badge.Symbol)
			width += entry.badge.Width
		}
	}
	return sb.String(), width
}

// wrapBody greedily word-wraps text to the given width, hard-breaking only
// words that are longer than a whole line. Always returns at least one
// segment; an empty body yields a single empty segment.
func wrapBody(text string, width int) []string {
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}
