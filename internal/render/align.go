// Package render provides display-width aware text helpers for terminal cells
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align is a horizontal placement of text inside a cell
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignStretch
)

// String returns the lower-case name used in configuration files
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignStretch:
		return "stretch"
	default:
		return "left"
	}
}

// ParseAlign maps a configuration name to an Align. Unknown names are Left.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	case "stretch":
		return AlignStretch
	default:
		return AlignLeft
	}
}

// Measure returns the display width of a string
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// PadLeft adds padding to the left of a string
func PadLeft(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return strings.Repeat(" ", width-currentWidth) + s
}

// PadRight adds padding to the right of a string
func PadRight(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// PadCenter centers a string within the given width
func PadCenter(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	padding := width - currentWidth
	leftPadding := padding / 2
	return strings.Repeat(" ", leftPadding) + s + strings.Repeat(" ", padding-leftPadding)
}

// Truncate truncates a string to the given display width
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// Fit truncates s to width and pads it according to align, so the result is
// exactly width columns wide. Stretch behaves like Left for text.
func Fit(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	switch align {
	case AlignCenter:
		return PadCenter(s, width)
	case AlignRight:
		return PadLeft(s, width)
	default:
		return PadRight(s, width)
	}
}
