package ui

import (
	"github.com/mattn/go-runewidth"
)

// LayoutRow is a row of laid out text, holding the runes [Start, End) of the
// text.
type LayoutRow struct {
	Start, End int
	Text       string
}

// TextLayout is a single line of text wrapped over rows of a fixed width in
// terminal cells. Caret offsets are given in runes, positions in cells.
type TextLayout struct {
	width int
	rows  []LayoutRow
}

// LayoutText wraps the given text to the given width.
//
// Wide runes are never split across rows. If the last row is completely
// filled, an empty row is appended, so that a caret after the last rune has a
// place to be.
func LayoutText(text string, width int) TextLayout {
	if width < 2 {
		width = 2
	}
	runes := []rune(text)
	l := TextLayout{width: width}

	start, rowWidth := 0, 0
	for i, r := range runes {
		w := runewidth.RuneWidth(r)
		if rowWidth+w > width {
			l.rows = append(l.rows, LayoutRow{Start: start, End: i, Text: string(runes[start:i])})
			start, rowWidth = i, 0
		}
		rowWidth += w
	}
	l.rows = append(l.rows, LayoutRow{Start: start, End: len(runes), Text: string(runes[start:])})
	if rowWidth == width {
		l.rows = append(l.rows, LayoutRow{Start: len(runes), End: len(runes)})
	}
	return l
}

// Rows returns the rows of the layout.
func (l TextLayout) Rows() []LayoutRow { return l.rows }

// Height returns the number of rows of the layout, which is at least one.
func (l TextLayout) Height() int { return len(l.rows) }

// CaretPosition returns the cell column and row a caret at the given offset
// is at.
func (l TextLayout) CaretPosition(offset int) (col, row int) {
	if offset < 0 {
		offset = 0
	}
	for i, r := range l.rows {
		last := i == len(l.rows)-1
		if offset < r.End || (last && offset >= r.Start) {
			runes := []rune(r.Text)
			n := offset - r.Start
			if n > len(runes) {
				n = len(runes)
			}
			return runewidth.StringWidth(string(runes[:n])), i
		}
	}
	return 0, 0
}

// OffsetAt returns the caret offset closest to the given cell column and row.
// Positions beyond the text are clamped to it.
func (l TextLayout) OffsetAt(col, row int) int {
	if row < 0 {
		return 0
	}
	if row >= len(l.rows) {
		return l.rows[len(l.rows)-1].End
	}
	r := l.rows[row]
	cells := 0
	for i, c := range []rune(r.Text) {
		w := runewidth.RuneWidth(c)
		if col < cells+w {
			return r.Start + i
		}
		cells += w
	}
	return r.End
}
