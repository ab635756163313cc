// Package viewer runs the render loop: the single consumer of the event
// stream that owns the message buffer and the terminal surface.
package viewer

import (
	"fmt"

	"github.com/john/chatview/internal/buffer"
	"github.com/john/chatview/internal/event"
	"github.com/john/chatview/internal/layout"
	"github.com/john/chatview/internal/message"
	"github.com/john/chatview/internal/style"
)

// Surface is the rendering contract the viewer draws through. Draw receives
// the full frame with lines[0] as the bottom row of the viewport.
type Surface interface {
	Size() (width, height int)
	Draw(lines []style.Line) error
}

// Viewer dispatches events to buffer mutation, quit handling, or a redraw
// pass over the whole buffer.
type Viewer struct {
	cfg     layout.Config
	buf     *buffer.Ring
	surface Surface
}

// New creates a viewer with a message buffer of the given capacity.
func New(cfg layout.Config, capacity int, surface Surface) *Viewer {
	return &Viewer{
		cfg:     cfg,
		buf:     buffer.New(capacity),
		surface: surface,
	}
}

// Run consumes events until the quit key, a draw failure, or the stream
// closing. Returns nil on quit or close; a draw failure is returned to the
// caller and is fatal for the process.
func (v *Viewer) Run(events <-chan event.Event) error {
	for ev := range events {
		switch e := ev.(type) {
		case event.Key:
			if e.Press.IsQuit() {
				return nil
			}
			// Every other key is ignored.
		case event.Incoming:
			v.buf.Insert(e.Message)
		case event.Tick:
			if err := v.redraw(); err != nil {
				return fmt.Errorf("draw frame: %w", err)
			}
		}
	}
	return nil
}

// redraw lays out every buffered message, newest first, and hands the
// resulting lines to the surface bottom-first so the newest message's last
// line lands on the bottom row.
func (v *Viewer) redraw() error {
	width, _ := v.surface.Size()

	var lines []style.Line
	v.buf.Each(func(m message.Message) {
		msgLines := layout.Message(m, width, v.cfg)
		for i := len(msgLines) - 1; i >= 0; i-- {
			lines = append(lines, msgLines[i])
		}
	})
	return v.surface.Draw(lines)
}
