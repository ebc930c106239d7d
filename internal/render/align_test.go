package render

import (
	"strings"
	"testing"
)

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in   string
		want Align
	}{
		{"left", AlignLeft},
		{"Center", AlignCenter},
		{" right ", AlignRight},
		{"stretch", AlignStretch},
		{"", AlignLeft},
		{"diagonal", AlignLeft},
	}
	for _, tt := range tests {
		if got := ParseAlign(tt.in); got != tt.want {
			t.Errorf("ParseAlign(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAlignStringRoundTrip(t *testing.T) {
	for _, a := range []Align{AlignLeft, AlignCenter, AlignRight, AlignStretch} {
		if got := ParseAlign(a.String()); got != a {
			t.Errorf("ParseAlign(%q) = %v, want %v", a.String(), got, a)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		align Align
		want  string
	}{
		{"left", "ab", 5, AlignLeft, "ab   "},
		{"right", "ab", 5, AlignRight, "   ab"},
		{"center", "ab", 5, AlignCenter, " ab  "},
		{"stretch", "ab", 4, AlignStretch, "ab  "},
		{"truncate", "abcdef", 3, AlignLeft, "abc"},
		{"zero width", "abc", 0, AlignLeft, ""},
		{"empty", "", 3, AlignRight, "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.s, tt.width, tt.align); got != tt.want {
				t.Errorf("Fit(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestFitWideRunes(t *testing.T) {
	// CJK characters are two columns wide
	got := Fit("中文字", 5, AlignLeft)
	if Measure(got) != 5 {
		t.Errorf("Measure(Fit) = %d, want 5 (got %q)", Measure(got), got)
	}
	if !strings.HasPrefix(got, "中文") {
		t.Errorf("Fit kept %q, want prefix 中文", got)
	}
}

func TestScrollTrack(t *testing.T) {
	lines := ScrollTrack(10, 0, 0, 5)
	for i, l := range lines {
		if l != thumbRune {
			t.Errorf("line %d = %q, want full thumb when nothing scrolls", i, l)
		}
	}

	lines = ScrollTrack(10, 0, 10, 10)
	if lines[0] != thumbRune || lines[9] != trackRune {
		t.Errorf("top position: got %v", lines)
	}

	lines = ScrollTrack(10, 10, 10, 10)
	if lines[9] != thumbRune || lines[0] != trackRune {
		t.Errorf("bottom position: got %v", lines)
	}

	if got := ScrollTrack(0, 0, 0, 0); got != nil {
		t.Errorf("ScrollTrack(0) = %v, want nil", got)
	}
}
