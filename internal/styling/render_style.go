package styling

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/blocknote/internal/config"
)

// DrawStyling is how text is drawn: foreground and background color and
// attributes such as italics. Derived stylings are returned as copies.
type DrawStyling interface {
	AsTcell() tcell.Style

	DefaultEmphasized() DrawStyling
	LightenedFG(percentage int) DrawStyling

	Italicized() DrawStyling
	Bolded() DrawStyling
	Inverted() DrawStyling
}

// FallbackStyling is a DrawStyling holding renderer-independent colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined, strikethrough bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcellColor(s.fg)).
		Background(toTcellColor(s.bg)).
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underlined).
		StrikeThrough(s.strikethrough)
}

func (s *FallbackStyling) derive(change func(*FallbackStyling)) DrawStyling {
	result := *s
	change(&result)
	return &result
}

// DefaultEmphasized returns a copy with both colors darkened by a fifth.
func (s *FallbackStyling) DefaultEmphasized() DrawStyling {
	return s.derive(func(r *FallbackStyling) {
		r.fg, r.bg = darken(r.fg, 20), darken(r.bg, 20)
	})
}

// LightenedFG returns a copy with the foreground lightened by the percentage.
func (s *FallbackStyling) LightenedFG(percentage int) DrawStyling {
	return s.derive(func(r *FallbackStyling) { r.fg = lighten(r.fg, percentage) })
}

// Italicized returns an italic copy.
func (s *FallbackStyling) Italicized() DrawStyling {
	return s.derive(func(r *FallbackStyling) { r.italic = true })
}

// Bolded returns a bold copy.
func (s *FallbackStyling) Bolded() DrawStyling {
	return s.derive(func(r *FallbackStyling) { r.bold = true })
}

// Inverted returns a copy with fore- and background swapped, which is how
// the caret is drawn.
func (s *FallbackStyling) Inverted() DrawStyling {
	return s.derive(func(r *FallbackStyling) { r.fg, r.bg = r.bg, r.fg })
}

// StyleFromHex constructs and returns a styling from two hexadecimally
// formatted strings for the foreground and background color.
// Strings have to have hexadecimal or HTML color notation and lead with a '#'.
// Malformed colors fall back to white on black.
//
// Examples:
//   - '#ff0000'
//   - '#fff'
//   - '#BEEF42'
func StyleFromHex(fg, bg string) *FallbackStyling {
	return &FallbackStyling{
		fg: colorFromHex(fg, colorful.Color{R: 1, G: 1, B: 1}),
		bg: colorFromHex(bg, colorful.Color{}),
	}
}

// StyleFromConfig constructs a styling from a configured styling.
func StyleFromConfig(c config.Styling) DrawStyling {
	s := StyleFromHex(c.Fg, c.Bg)
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
		s.strikethrough = c.Style.Strikethrough
	}
	return s
}

// StyleFromColors constructs a style by the given colors.
func StyleFromColors(fg, bg colorful.Color) *FallbackStyling {
	return &FallbackStyling{
		fg: fg,
		bg: bg,
	}
}
