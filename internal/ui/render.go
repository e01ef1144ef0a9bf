package ui

import "github.com/ja-he/blocknote/internal/styling"

// Renderer can draw boxes and text.
type Renderer interface {
	// DrawBox fills the given area with the style's background.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws the text into the given area, continuing on the next row
	// where a row is full.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that does not draw outside of its
// dimensions.
type ConstrainedRenderer interface {
	Renderer

	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is what the root pane needs of the screen to run
// a render cycle. Other panes draw via their renderers only.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}
