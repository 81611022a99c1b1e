// Package render fits cell text into fixed terminal widths.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut by Truncate
const Ellipsis = "…"

// Measure returns the display width of a string
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight adds padding to the right of a string
func PadRight(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// Truncate cuts s to the given display width, ending with an ellipsis
// when anything was removed
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// Fit truncates and pads s to exactly width cells
func Fit(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}

// TailFit keeps the end of s visible, used for the cell being typed into
func TailFit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return PadRight(s, width)
	}
	runes := []rune(s)
	w := Measure(Ellipsis)
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return PadRight(Ellipsis+string(runes[i:]), width)
}
