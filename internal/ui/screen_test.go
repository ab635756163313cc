package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john/chatview/internal/style"
)

func newTestScreen(t *testing.T, width, height int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	require.NoError(t, s.Init())
	sim.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	row := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		c := cells[y*width+x]
		if len(c.Runes) == 0 {
			row = append(row, ' ')
			continue
		}
		row = append(row, c.Runes[0])
	}
	return string(row)
}

func TestDrawAnchorsAtBottom(t *testing.T) {
	s, sim := newTestScreen(t, 10, 3)

	require.NoError(t, s.Draw([]style.Line{
		{style.Raw("bottom")},
		{style.Raw("middle")},
	}))

	assert.Equal(t, "bottom    ", rowText(sim, 2))
	assert.Equal(t, "middle    ", rowText(sim, 1))
	assert.Equal(t, "          ", rowText(sim, 0))
}

func TestDrawDiscardsLinesAboveViewport(t *testing.T) {
	s, sim := newTestScreen(t, 10, 2)

	require.NoError(t, s.Draw([]style.Line{
		{style.Raw("one")},
		{style.Raw("two")},
		{style.Raw("lost")},
	}))

	assert.Equal(t, "one       ", rowText(sim, 1))
	assert.Equal(t, "two       ", rowText(sim, 0))
}

func TestDrawTruncatesAtRightEdge(t *testing.T) {
	s, sim := newTestScreen(t, 4, 2)

	require.NoError(t, s.Draw([]style.Line{
		{style.Raw("abcdef")},
	}))

	assert.Equal(t, "abcd", rowText(sim, 1))
}

func TestDrawAppliesSpanStyle(t *testing.T) {
	s, sim := newTestScreen(t, 10, 2)

	colored := style.Default().Foreground(style.RGBColor(255, 0, 0))
	require.NoError(t, s.Draw([]style.Line{
		{style.Styled("x", colored)},
	}))

	cells, width, height := sim.GetContents()
	cell := cells[(height-1)*width]
	fg, _, _ := cell.Style.Decompose()
	r, g, b := fg.RGB()
	assert.Equal(t, int32(255), r)
	assert.Equal(t, int32(0), g)
	assert.Equal(t, int32(0), b)
}

func TestKeyEventsAreForwarded(t *testing.T) {
	s, sim := newTestScreen(t, 10, 2)

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, rune(tcell.KeyCtrlC), tcell.ModCtrl)

	first := waitKey(t, s)
	assert.Equal(t, KeyRune, first.Key)
	assert.Equal(t, 'x', first.Rune)
	assert.False(t, first.IsQuit())

	second := waitKey(t, s)
	assert.True(t, second.IsQuit())
}

func waitKey(t *testing.T, s *Screen) KeyEvent {
	t.Helper()
	select {
	case k := <-s.Keys():
		return k
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for key event")
		return KeyEvent{}
	}
}
