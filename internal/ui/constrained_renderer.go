package ui

import (
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/util"
)

// CR is a constrained renderer for a TUI.
// It draws via an underlying renderer, but only within the area its
// constraint gives at draw time; anything drawn outside of it is cut off.
type CR struct {
	renderer   Renderer
	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer drawing via the given renderer,
// constrained to the dimensions the given constraint returns at draw time.
func NewConstrainedRenderer(
	renderer ConstrainedRenderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the part of the given text box that is within the
// constraint.
func (r *CR) DrawText(x, y, w, h int, sty styling.DrawStyling, text string) {
	c := r.constrain(x, y, w, h)
	r.renderer.DrawText(c.X, c.Y, c.W, c.H, sty, text)
}

// DrawBox draws the part of the given box that is within the constraint.
func (r *CR) DrawBox(x, y, w, h int, sty styling.DrawStyling) {
	c := r.constrain(x, y, w, h)
	r.renderer.DrawBox(c.X, c.Y, c.W, c.H, sty)
}

func (r *CR) constrain(x, y, w, h int) util.Rect {
	return util.NewRect(x, y, w, h).Intersect(util.NewRect(r.constraint()))
}
