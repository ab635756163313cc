package message

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want *RGB
	}{
		{"#FF0000", &RGB{255, 0, 0}},
		{"#8a2be2", &RGB{138, 43, 226}},
		{"#000000", &RGB{0, 0, 0}},
		{"", nil},
		{"red", nil},
		{"#F00", nil},
	}

	for _, tt := range tests {
		got := ParseHex(tt.in)
		if tt.want == nil {
			if got != nil {
				t.Errorf("ParseHex(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil || *got != *tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
