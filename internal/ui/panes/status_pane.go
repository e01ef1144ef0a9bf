package panes

import (
	"fmt"

	"github.com/ja-he/blocknote/internal/model"
	"github.com/ja-he/blocknote/internal/storage"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/util"
)

// StatusPane is a status bar that displays the focused block's type, the
// document's size, and the save indicator.
type StatusPane struct {
	ui.LeafPane

	document   func() model.Document
	focusedID  func() string
	saveStatus func() storage.SaveStatus
	slot       string
}

// SaveIndicator returns the text indicating the given save status.
func SaveIndicator(status storage.SaveStatus) string {
	switch status {
	case storage.SaveStatusSaving:
		return "Saving..."
	case storage.SaveStatusSaved:
		return "Saved"
	default:
		return ""
	}
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	doc := p.document()
	typeLabel := "-"
	if block, ok := doc.Get(p.focusedID()); ok {
		typeLabel = block.Type.Info().Label
	}
	typeStr := fmt.Sprintf(" %s ", typeLabel)
	p.Renderer.DrawBox(x, y, len(typeStr), h, bgStyleEmph)
	p.Renderer.DrawText(x, y, len(typeStr), 1, bgStyleEmph.Bolded(), typeStr)

	info := fmt.Sprintf("%s · %d blocks", p.slot, len(doc))
	p.Renderer.DrawText(x+len(typeStr)+1, y, w/2, 1, bgStyle.LightenedFG(30), util.TruncateAt(info, w/2))

	indicator := SaveIndicator(p.saveStatus())
	if indicator != "" {
		p.Renderer.DrawText(x+w-len(indicator)-2, y, len(indicator), 1, bgStyleEmph.Italicized(), indicator)
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	document func() model.Document,
	focusedID func() string,
	saveStatus func() storage.SaveStatus,
	slot string,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		document:   document,
		focusedID:  focusedID,
		saveStatus: saveStatus,
		slot:       slot,
	}
}
