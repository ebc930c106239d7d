package render

import "strings"

const (
	trackRune = "░"
	thumbRune = "█"
)

// ScrollTrack renders a vertical scroll track of height lines for a range
// control with the given value and maximum. The thumb covers visible/(total)
// of the track and never shrinks below one line.
func ScrollTrack(height, value, maximum, visible int) []string {
	if height <= 0 {
		return nil
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = trackRune
	}
	if maximum <= 0 {
		// Nothing to scroll: the thumb fills the track.
		for i := range lines {
			lines[i] = thumbRune
		}
		return lines
	}

	total := maximum + visible
	thumb := height * visible / total
	if thumb < 1 {
		thumb = 1
	}
	if thumb > height {
		thumb = height
	}

	if value < 0 {
		value = 0
	}
	if value > maximum {
		value = maximum
	}
	start := (height - thumb) * value / maximum
	for i := start; i < start+thumb && i < height; i++ {
		lines[i] = thumbRune
	}
	return lines
}

// ScrollTrackString is ScrollTrack joined with newlines.
func ScrollTrackString(height, value, maximum, visible int) string {
	return strings.Join(ScrollTrack(height, value, maximum, visible), "\n")
}
