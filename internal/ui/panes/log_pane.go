package panes

import (
	"sort"

	"github.com/ja-he/blocknote/internal/potatolog"
	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	row := 2

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.LogTitleBox, util.PadCenter(title, w, ' '))

	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]
		level := potatolog.Field(entry, "level")

		levelLen := len(" error ")
		indent := x + levelLen + 1
		p.Renderer.DrawText(
			x, y+row, levelLen, 1,
			p.levelStyle(level),
			util.PadCenter(level, levelLen, ' '),
		)

		col := indent
		message := potatolog.Field(entry, "message")
		p.Renderer.DrawText(col, y+row, w-(col-x), 1, p.Stylesheet.LogDefault, message)
		col += len(message) + 1

		caller := potatolog.Field(entry, "caller")
		if caller != "" {
			p.Renderer.DrawText(col, y+row, w-(col-x), 1, p.Stylesheet.LogEntryLocation, caller)
			col += len(caller) + 1
		}

		p.Renderer.DrawText(col, y+row, w-(col-x), 1, p.Stylesheet.LogEntryTime, potatolog.Field(entry, "time"))
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			if k != "caller" && k != "message" && k != "time" && k != "level" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				break
			}
			p.Renderer.DrawText(indent, y+row, w-(indent-x), 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(indent+len(k)+2, y+row, w-(indent+len(k)+2-x), 1, p.Stylesheet.LogEntryLocation, potatolog.Field(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				Visible: condition,
				ID:      ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
