package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/drainsim/internal/drain"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// PlotTrace renders a height-vs-time line plot of one trace.
func PlotTrace(trace drain.Trace, caption string) string {
	return asciigraph.Plot(trace.Heights(),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotRates renders the dh/dt series of a trace.
func PlotRates(rates []float64, caption string) string {
	return asciigraph.Plot(rates,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotComparison overlays the ideal and realistic traces of a pair run.
func PlotComparison(pr *drain.PairResult, caption string) string {
	series := [][]float64{
		pr.Ideal.Trace.Heights(),
		pr.Realistic.Trace.Heights(),
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
	)
}
