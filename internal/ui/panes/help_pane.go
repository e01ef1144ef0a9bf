package panes

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/blocknote/internal/input"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/util"
)

const helpMaxKeyWidth = 24

// A HelpPane is a popup listing the currently active key bindings.
// Bindings are sorted by what they do, with the keys right-aligned in a
// column before the explanation.
type HelpPane struct {
	ui.LeafPane

	// Content returns the help to show, i.E. the currently active mappings.
	Content func() input.Help
}

type helpEntry struct {
	keys        string
	explanation string
}

func sortedHelp(help input.Help) []helpEntry {
	entries := make([]helpEntry, 0, len(help))
	for keys, explanation := range help {
		entries = append(entries, helpEntry{keys: keys, explanation: explanation})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].explanation == entries[j].explanation {
			return entries[i].keys < entries[j].keys
		}
		return entries[i].explanation < entries[j].explanation
	})
	return entries
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)
	p.Renderer.DrawText(x+1, y, w-2, 1, p.Stylesheet.Help.Bolded(), "Key bindings")

	entries := sortedHelp(p.Content())
	keyWidth := 0
	for _, e := range entries {
		keyWidth = max(keyWidth, runewidth.StringWidth(e.keys))
	}
	keyWidth = min(keyWidth, helpMaxKeyWidth)
	explanationX := x + 1 + keyWidth + 1
	explanationWidth := x + w - 1 - explanationX

	for i, e := range entries {
		row := y + 2 + i
		if row >= y+h {
			break
		}
		keys := util.TruncateAt(e.keys, keyWidth)
		keysWidth := runewidth.StringWidth(keys)
		p.Renderer.DrawText(x+1+keyWidth-keysWidth, row, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
		p.Renderer.DrawText(explanationX, row, explanationWidth, 1, p.Stylesheet.Help.Italicized(), util.TruncateAt(e.explanation, explanationWidth))
	}
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
	inputProcessor input.SimpleInputProcessor,
) *HelpPane {
	p := &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		Content: content,
	}
	p.InputProcessor = inputProcessor
	return p
}
