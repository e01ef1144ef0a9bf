package panes

import (
	"github.com/ja-he/blocknote/internal/control/edit/views"
	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/model"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/ui"
)

// Gutter layout, relative to the pane's x offset.
const (
	deleteControlCol = 1
	addControlCol    = 3
	handleCol        = 5
	handleWidth      = 2
	gutterWidth      = 8
	checkboxWidth    = 4
)

const documentCursorRequester = "document-pane"

// blockPlacement is where a block was drawn in the last draw, in rows
// relative to the top of the document (i.E. before scrolling).
type blockPlacement struct {
	id       string
	row      int
	contentX int
	layout   ui.TextLayout
}

// DocumentPane shows the document's blocks one below the other, each with
// its gutter controls (delete, add below, drag handle), and places the text
// cursor at the focused block's caret.
//
// Input is processed by the focused block's input processor.
type DocumentPane struct {
	ui.LeafPane

	document  func() model.Document
	focusedID func() string
	editor    func(id string) (views.BlockEditorView, bool)
	focused   func() (input.SimpleInputProcessor, bool)
	drag      func() (draggedID, targetID string)

	cursorWrangler ui.CursorLocationRequestHandler

	scrollOffset int
	placements   []blockPlacement
}

// Draw draws the document.
func (p *DocumentPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	doc := p.document()
	focusedID := p.focusedID()
	draggedID, targetID := p.drag()

	p.placements = p.place(doc, x, w)

	caretRow, caretCol, haveCaret := -1, 0, false
	for _, placement := range p.placements {
		if placement.id != focusedID {
			continue
		}
		e, ok := p.editor(placement.id)
		if !ok {
			break
		}
		col, row := placement.layout.CaretPosition(e.GetCursorPos())
		caretRow, caretCol, haveCaret = placement.row+row, placement.contentX+col, true
	}
	if haveCaret {
		if caretRow < p.scrollOffset {
			p.scrollOffset = caretRow
		} else if caretRow >= p.scrollOffset+h {
			p.scrollOffset = caretRow - h + 1
		}
	}

	for i, placement := range p.placements {
		block := doc[i]
		top := y + placement.row - p.scrollOffset
		height := placement.layout.Height()
		if top+height <= y || top >= y+h {
			continue
		}

		gutterStyle := p.Stylesheet.Gutter
		if block.ID == targetID && targetID != draggedID {
			p.Renderer.DrawBox(x, top, w, height, p.Stylesheet.DragTarget)
		}
		if block.ID == draggedID {
			gutterStyle = gutterStyle.Bolded()
		}
		p.Renderer.DrawText(x+deleteControlCol, top, 1, 1, gutterStyle, "x")
		p.Renderer.DrawText(x+addControlCol, top, 1, 1, gutterStyle, "+")
		p.Renderer.DrawText(x+handleCol, top, handleWidth, 1, gutterStyle, "::")

		contentStyle := p.Stylesheet.ForBlock(block)
		if block.Type == model.BlockTypeTodo {
			box := "[ ]"
			if block.IsChecked() {
				box = "[x]"
			}
			p.Renderer.DrawText(x+gutterWidth, top, checkboxWidth, 1, contentStyle, box)
		}

		if block.Content == "" {
			if block.Type != model.BlockTypeParagraph || block.ID == focusedID {
				p.Renderer.DrawText(placement.contentX, top, w-(placement.contentX-x), 1, p.Stylesheet.Placeholder, block.Type.Info().Placeholder)
			}
			continue
		}
		for r, row := range placement.layout.Rows() {
			p.Renderer.DrawText(placement.contentX, top+r, w-(placement.contentX-x), 1, contentStyle, row.Text)
		}
	}

	cursorY := y + caretRow - p.scrollOffset
	if haveCaret && cursorY >= y && cursorY < y+h {
		p.cursorWrangler.Put(ui.CursorLocation{X: caretCol, Y: cursorY}, documentCursorRequester)
	} else {
		p.cursorWrangler.Delete(documentCursorRequester)
	}
}

// Undraw removes the cursor request of this pane.
func (p *DocumentPane) Undraw() {
	p.cursorWrangler.Delete(documentCursorRequester)
}

func (p *DocumentPane) place(doc model.Document, x, w int) []blockPlacement {
	result := make([]blockPlacement, len(doc))
	row := 0
	for i, block := range doc {
		contentX := x + gutterWidth
		if block.Type == model.BlockTypeTodo {
			contentX += checkboxWidth
		}
		result[i] = blockPlacement{
			id:       block.ID,
			row:      row,
			contentX: contentX,
			layout:   ui.LayoutText(block.Content, w-(contentX-x)),
		}
		row += result[i].layout.Height()
	}
	return result
}

// CaretLocation returns the screen location of the focused block's caret as of
// the last draw.
func (p *DocumentPane) CaretLocation() (ui.CursorLocation, bool) {
	_, y, _, _ := p.Dimensions()
	focusedID := p.focusedID()
	for _, placement := range p.placements {
		if placement.id != focusedID {
			continue
		}
		e, ok := p.editor(placement.id)
		if !ok {
			return ui.CursorLocation{}, false
		}
		col, row := placement.layout.CaretPosition(e.GetCursorPos())
		return ui.CursorLocation{X: placement.contentX + col, Y: y + placement.row + row - p.scrollOffset}, true
	}
	return ui.CursorLocation{}, false
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *DocumentPane) GetPositionInfo(x, y int) ui.PositionInfo {
	paneX, paneY, _, _ := p.Dimensions()
	row := y - paneY + p.scrollOffset

	for _, placement := range p.placements {
		if row < placement.row || row >= placement.row+placement.layout.Height() {
			continue
		}
		info := &ui.DocumentPanePositionInfo{BlockID: placement.id, Part: ui.BlockNowhere}
		col := x - paneX
		switch {
		case col == deleteControlCol && row == placement.row:
			info.Part = ui.BlockDeleteControl
		case col == addControlCol && row == placement.row:
			info.Part = ui.BlockAddControl
		case col >= handleCol && col < handleCol+handleWidth && row == placement.row:
			info.Part = ui.BlockHandle
		case x >= paneX+gutterWidth && x < placement.contentX && row == placement.row:
			info.Part = ui.BlockCheckbox
		case x >= placement.contentX:
			info.Part = ui.BlockContent
			info.Offset = placement.layout.OffsetAt(x-placement.contentX, row-placement.row)
		}
		return info
	}

	return &ui.DocumentPanePositionInfo{Part: ui.BlockNowhere}
}

// CapturesInput returns whether the focused block captures input.
func (p *DocumentPane) CapturesInput() bool {
	processor, ok := p.focused()
	return ok && processor.CapturesInput()
}

// ProcessInput passes the input to the focused block's input processor.
func (p *DocumentPane) ProcessInput(key input.Key) bool {
	processor, ok := p.focused()
	return ok && processor.ProcessInput(key)
}

// GetHelp returns the input help of the focused block.
func (p *DocumentPane) GetHelp() input.Help {
	processor, ok := p.focused()
	if !ok {
		return input.Help{}
	}
	return processor.GetHelp()
}

// NewDocumentPane constructs and returns a new DocumentPane.
func NewDocumentPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	document func() model.Document,
	focusedID func() string,
	editor func(id string) (views.BlockEditorView, bool),
	focused func() (input.SimpleInputProcessor, bool),
	drag func() (draggedID, targetID string),
	cursorWrangler ui.CursorLocationRequestHandler,
) *DocumentPane {
	return &DocumentPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		document:       document,
		focusedID:      focusedID,
		editor:         editor,
		focused:        focused,
		drag:           drag,
		cursorWrangler: cursorWrangler,
	}
}
