package panes

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/blocknote/internal/styling"
	"github.com/ja-he/blocknote/internal/ui"
	"github.com/ja-he/blocknote/internal/util"
)

type perfMetric struct {
	label  string
	values util.MetricsGetter
}

// PerfPane is an ephemeral pane showing timing metrics (one per row) during
// normal usage.
// The last value of a metric is highlighted the more it exceeds the
// metric's average.
type PerfPane struct {
	ui.LeafPane

	metrics []perfMetric
}

var (
	perfDefaultStyle = styling.StyleFromHex("#000000", "#f0f0f0")
	perfWarnColor    = colorful.Color{R: 1.0, G: 0.8, B: 0.8}
)

// Draw draws this pane.
func (p *PerfPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dims()
	p.Renderer.DrawBox(x, y, w, h, perfDefaultStyle)

	lastWidth := len(" render time: ....... xs ")
	for i, m := range p.metrics {
		last, avg := m.values.GetLast(), m.values.Avg()
		p.Renderer.DrawText(x, y+i, lastWidth, 1, perfExcessStyle(last, avg), fmt.Sprintf(" %-6s time: % 7d µs ", m.label, last))
		p.Renderer.DrawText(x+lastWidth, y+i, w-lastWidth, 1, perfDefaultStyle, fmt.Sprintf(" %-6s avg ~ % 7d µs", m.label, avg))
	}
}

func perfExcessStyle(last, avg uint64) styling.DrawStyling {
	saturation := 0.0
	if last > avg && avg > 0 {
		saturation = math.Min(float64(last-avg)/float64(avg), 1.0)
	}
	hue, _, lightness := perfWarnColor.Hsl()
	return styling.StyleFromColors(colorful.Hsl(0, 0, 0), colorful.Hsl(hue, saturation, lightness))
}

// NewPerfPane constructs and returns a new PerfPane showing render and input
// processing times.
func NewPerfPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	condition func() bool,
	renderTime util.MetricsGetter,
	eventProcessingTime util.MetricsGetter,
) *PerfPane {
	return &PerfPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer: renderer,
			Dims:     dimensions,
		},
		metrics: []perfMetric{
			{label: "render", values: renderTime},
			{label: "input", values: eventProcessingTime},
		},
	}
}
