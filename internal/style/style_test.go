package style

import "testing"

func TestRGBColorRoundTrip(t *testing.T) {
	c := RGBColor(18, 52, 86)
	if !c.IsRGB() {
		t.Fatal("RGBColor result not recognized as RGB")
	}
	r, g, b := c.RGB()
	if r != 18 || g != 52 || b != 86 {
		t.Errorf("RGB() = %d, %d, %d; want 18, 52, 86", r, g, b)
	}
}

func TestPaletteColorsAreNotRGB(t *testing.T) {
	for _, c := range []Color{ColorDefault, ColorBlack, ColorGray, ColorWhite} {
		if c.IsRGB() {
			t.Errorf("color %d reported as RGB", c)
		}
	}
}

func TestLineWidth(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want int
	}{
		{"empty", Line{}, 0},
		{"ascii", Line{Raw("bob"), Raw(": "), Raw("hi")}, 7},
		{"wide runes", Line{Raw("🌟"), Raw("ab")}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStyleDecompose(t *testing.T) {
	s := Default().Foreground(RGBColor(1, 2, 3)).Background(ColorGray)
	fg, bg := s.Decompose()
	if !fg.IsRGB() {
		t.Error("foreground lost its RGB value")
	}
	if bg != ColorGray {
		t.Errorf("background = %d, want %d", bg, ColorGray)
	}
}
