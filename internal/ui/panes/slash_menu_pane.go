package panes

import (
	"fmt"

	"github.com/ja-he/blocknote/internal/control/edit/slash"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/util"
)

// SlashMenuWidth is the width of the command menu popup.
const SlashMenuWidth = 44

// SlashMenuHeight returns the height of the command menu popup for the given
// number of matching entries.
func SlashMenuHeight(matches int) int {
	if matches == 0 {
		matches = 1
	}
	// title and a padding row
	return matches + 2
}

// SlashMenuPane is the command menu popup listing the block types matching
// the typed filter, with the selected one highlighted.
type SlashMenuPane struct {
	ui.LeafPane

	menu func() (*slash.Menu, bool)
}

// Draw draws the menu, if it is open.
func (p *SlashMenuPane) Draw() {
	menu, ok := p.menu()
	if !ok || !menu.IsOpen() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Menu)
	p.Renderer.DrawText(x+1, y, w-2, 1, p.Stylesheet.MenuTitle, slash.Title)

	matches := menu.Matches()
	if len(matches) == 0 {
		p.Renderer.DrawText(x+1, y+1, w-2, 1, p.Stylesheet.MenuDescription.Italicized(), slash.NoResults)
		return
	}

	for i, t := range matches {
		row := y + 1 + i
		info := t.Info()

		labelStyle, descriptionStyle := p.Stylesheet.Menu, p.Stylesheet.MenuDescription
		if i == menu.Selected() {
			p.Renderer.DrawBox(x, row, w, 1, p.Stylesheet.MenuSelected)
			labelStyle, descriptionStyle = p.Stylesheet.MenuSelected, p.Stylesheet.MenuSelected.Italicized()
		}

		icon := fmt.Sprintf("%-2s", info.Icon)
		p.Renderer.DrawText(x+1, row, 2, 1, labelStyle.Bolded(), icon)
		p.Renderer.DrawText(x+4, row, 12, 1, labelStyle, util.TruncateAt(info.Label, 12))
		p.Renderer.DrawText(x+17, row, w-18, 1, descriptionStyle, util.TruncateAt(info.Description, w-18))
	}
}

// GetPositionInfo returns the menu entry at the given position.
func (p *SlashMenuPane) GetPositionInfo(x, y int) ui.PositionInfo {
	info := &ui.SlashMenuPanePositionInfo{Index: -1}
	menu, ok := p.menu()
	if !ok || !menu.IsOpen() {
		return info
	}
	paneX, paneY, w, _ := p.Dimensions()
	index := y - paneY - 1
	if x >= paneX && x < paneX+w && index >= 0 && index < len(menu.Matches()) {
		info.Index = index
	}
	return info
}

// NewSlashMenuPane constructs and returns a new SlashMenuPane.
func NewSlashMenuPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	menu func() (*slash.Menu, bool),
) *SlashMenuPane {
	return &SlashMenuPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
				Visible: func() bool {
					m, ok := menu()
					return ok && m.IsOpen()
				},
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		menu: menu,
	}
}
