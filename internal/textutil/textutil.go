// Package textutil provides unicode- and ANSI-aware text utilities for TUI
// rendering and frame composition.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is the unicode ellipsis character used for truncation.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns a plain string
// occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// StyledWidth returns the visual width of a string that may contain ANSI
// escape sequences.
func StyledWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns,
// appending the ellipsis when something was cut. Styled input is handled.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if StyledWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Clip keeps the leftmost width visual columns of a possibly styled line,
// with no ellipsis.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// CropLeft drops the leftmost cols visual columns of a possibly styled
// line.
func CropLeft(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

// PadRight pads a line with spaces to exactly width visual columns,
// clipping when it is already wider.
func PadRight(s string, width int) string {
	w := StyledWidth(s)
	if w > width {
		return Clip(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft pads a line on the left to exactly width visual columns,
// clipping when it is already wider.
func PadLeft(s string, width int) string {
	w := StyledWidth(s)
	if w > width {
		return Clip(s, width)
	}
	return strings.Repeat(" ", width-w) + s
}

// Frame normalizes a multi-line render to exactly width x height cells:
// every line padded or clipped to width, the line count padded or clipped
// to height. Transition compositors rely on this so that both frames of a
// transition have identical geometry.
func Frame(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	for i := 0; i < height; i++ {
		if i < len(lines) {
			out[i] = PadRight(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return out
}
