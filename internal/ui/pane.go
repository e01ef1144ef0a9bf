package ui

import (
	"sync/atomic"

	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/styling"
)

// Pane is a UI pane.
//
// Panes form a tree under a root pane. Whether a pane HasFocus is a question
// for its parent: the pane has focus if its parent has focus and Focusses it.
// Every pane except the root is given its parent via SetParent.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo

	input.SimpleInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)
}

// PaneQuerier is the part of a pane its children may query.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneID identifies a pane. IDs from GeneratePaneID are unique.
type PaneID uint64

// NonePaneID stands for "no pane"; it is never generated.
const NonePaneID PaneID = 0

var lastPaneID atomic.Uint64

// GeneratePaneID returns a new unique pane ID.
func GeneratePaneID() PaneID {
	return PaneID(lastPaneID.Add(1))
}

// BasePane holds what every pane has and implements the queries on it.
// The ID has to be assigned on construction (see GeneratePaneID).
type BasePane struct {
	ID             PaneID
	Parent         PaneQuerier
	InputProcessor input.SimpleInputProcessor
	// Visible decides whether the pane is visible; nil means it always is.
	Visible func() bool
}

// Identify returns the pane's ID.
// It panics for a pane that was not assigned one.
func (p *BasePane) Identify() PaneID {
	if p.ID == NonePaneID {
		panic("pane has not been assigned an ID")
	}
	return p.ID
}

// SetParent sets the pane's parent.
func (p *BasePane) SetParent(parent PaneQuerier) { p.Parent = parent }

// IsVisible indicates whether the pane is visible.
func (p *BasePane) IsVisible() bool { return p.Visible == nil || p.Visible() }

// LeafPane is the base of panes without subpanes, i.E. panes that draw
// themselves. Embedding types implement Draw and, where needed, override the
// other methods.
type LeafPane struct {
	BasePane
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet styling.Stylesheet
}

// Dimensions returns the pane's current dimensions.
func (p *LeafPane) Dimensions() (x, y, w, h int) { return p.Dims() }

// Draw panics; embedding types have to implement it.
func (p *LeafPane) Draw() { panic("unimplemented draw") }

// Undraw does nothing.
func (p *LeafPane) Undraw() {}

// GetPositionInfo returns no information.
func (p *LeafPane) GetPositionInfo(x, y int) PositionInfo { return NoPanePositionInfo{} }

// HasFocus returns whether the pane has focus.
func (p *LeafPane) HasFocus() bool {
	return p.Parent != nil && p.Parent.HasFocus() && p.Parent.Focusses() == p.Identify()
}

// Focusses returns NonePaneID, as a leaf has no panes to focus.
func (p *LeafPane) Focusses() PaneID { return NonePaneID }

// CapturesInput returns whether the pane's input processor captures input.
func (p *LeafPane) CapturesInput() bool {
	return p.InputProcessor != nil && p.InputProcessor.CapturesInput()
}

// ProcessInput passes the key to the pane's input processor, if it has one.
func (p *LeafPane) ProcessInput(key input.Key) bool {
	return p.InputProcessor != nil && p.InputProcessor.ProcessInput(key)
}

// GetHelp returns the help of the pane's input processor.
func (p *LeafPane) GetHelp() input.Help {
	if p.InputProcessor == nil {
		return input.Help{}
	}
	return p.InputProcessor.GetHelp()
}
