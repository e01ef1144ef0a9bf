package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rect is a rectangle on a grid of cells.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a new rectangle at the given position and with the given
// dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains returns whether the given position is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// Intersect returns the part of the rectangle that is also inside the other
// rectangle. If they do not overlap, the result has no area.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.X+r.W, other.X+other.W), min(r.Y+r.H, other.Y+other.H)
	return Rect{X: x0, Y: y0, W: max(0, x1-x0), H: max(0, y1-y0)}
}

// TruncateAt truncates the given string to the given display width, marking
// the truncation with an ellipsis.
func TruncateAt(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width < 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadCenter centers the given string in the given display width, padding it
// with the given rune.
func PadCenter(s string, width int, pad rune) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), right)
}
