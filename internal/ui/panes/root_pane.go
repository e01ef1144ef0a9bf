package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/util"
)

// RootPane is the root of the pane tree. It runs the render cycle and routes
// input and position queries to its subpanes.
//
// Subpanes are stacked in layers, bottom to top: the document, the status
// bar, the command menu, the log and the help. The log and the help are
// popups that take focus from the document while they are shown; the
// performance overlay is drawn over everything and never takes input.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	documentPane ui.Pane
	layers       []ui.Pane
	// popups, from topmost down
	popups  []ui.Pane
	overlay ui.Pane

	inputProcessor input.SimpleInputProcessor

	log zerolog.Logger
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	documentPane ui.Pane,
	statusPane ui.Pane,
	menuPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	performanceMetricsOverlay ui.Pane,
	inputProcessor input.SimpleInputProcessor,
) *RootPane {
	p := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		documentPane:   documentPane,
		layers:         []ui.Pane{documentPane, statusPane, menuPane, logPane, helpPane},
		popups:         []ui.Pane{helpPane, logPane},
		overlay:        performanceMetricsOverlay,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}

	for _, pane := range append(p.layers, p.overlay) {
		pane.SetParent(p)
	}

	p.log.Trace().Uint64("id", uint64(p.ID)).Msg("created root pane")
	return p
}

// Dimensions returns the root pane's dimensions, i.E. the screen's.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// visibleLayers returns the visible layers bottom to top and the hidden ones.
func (p *RootPane) visibleLayers() (visible []ui.Pane, hidden []ui.Pane) {
	for _, pane := range p.layers {
		if pane.IsVisible() {
			visible = append(visible, pane)
		} else {
			hidden = append(hidden, pane)
		}
	}
	return visible, hidden
}

// GetPositionInfo returns the position info of the topmost visible layer at
// the position.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	visible, _ := p.visibleLayers()
	for i := len(visible) - 1; i >= 0; i-- {
		if util.NewRect(visible[i].Dimensions()).Contains(x, y) {
			return visible[i].GetPositionInfo(x, y)
		}
	}
	return ui.NoPanePositionInfo{}
}

// IsVisible returns true, as the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws all visible layers and the overlay, then shows or hides the
// cursor as the layers requested while drawing.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	visible, hidden := p.visibleLayers()
	for _, pane := range visible {
		pane.Draw()
	}
	for _, pane := range hidden {
		pane.Undraw()
	}

	// the caret is hidden while a popup covers the document
	if p.focussedPane() != p.documentPane {
		p.documentPane.Undraw()
	}

	p.overlay.Draw()

	p.cursorWrangler.Enact()
	p.renderer.Show()
}

// Undraw undraws all subpanes.
func (p *RootPane) Undraw() {
	p.renderer.Clear()
	for _, pane := range append(p.layers, p.overlay) {
		pane.Undraw()
	}
	p.cursorWrangler.Enact()
	p.renderer.Show()
}

// CapturesInput returns whether the focussed pane or the global processor
// captures input.
func (p *RootPane) CapturesInput() bool {
	return p.focussedPane().CapturesInput() || p.inputProcessor.CapturesInput()
}

// ProcessInput routes the key and returns whether it applied.
//
// A capturing global processor (e.g. one that has a partial key sequence) gets
// the input first, otherwise the focussed pane does. Input the focussed pane
// does not apply falls through to the global processor.
func (p *RootPane) ProcessInput(key input.Key) bool {
	if p.inputProcessor.CapturesInput() {
		return p.inputProcessor.ProcessInput(key)
	}
	if p.focussedPane().ProcessInput(key) {
		return true
	}
	return p.inputProcessor.ProcessInput(key)
}

// GetHelp returns the global help, overridden by the focussed pane's.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}
	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}
	return result
}

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true, as the root pane always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID { return p.focussedPane().Identify() }

// focussedPane returns the topmost visible popup, or the document if no popup
// is shown.
func (p *RootPane) focussedPane() ui.Pane {
	for _, popup := range p.popups {
		if popup.IsVisible() {
			return popup
		}
	}
	return p.documentPane
}

// SetParent panics, as the root pane cannot have a parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }
