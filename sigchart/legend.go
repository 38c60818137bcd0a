package sigchart

import "github.com/katalvlaran/mutsig/sigtype"

// LegendTitle is the title of the palette-legend chart.
const LegendTitle = "Trinucleotide context"

// BuildLegend returns the companion chart that explains the context
// palette: one panel per 5′ base, one unit-height bar per context in
// palette order. Unlike the signature chart, the legend shows x-axis
// labels — its whole purpose is to name the colors.
//
// The legend is constant data (it depends only on the fixed palette),
// so BuildLegend takes no input and cannot fail.
func BuildLegend() *ChartSpec {
	order := PaletteOrder()

	panels := make([]Panel, 0, len(sigtype.Bases))
	for i := 0; i < len(sigtype.Bases); i++ {
		block := order[i*4 : i*4+4]
		bars := make([]Bar, 0, len(block))
		for _, ctx := range block {
			color, _ := ColorFor(ctx)
			bars = append(bars, Bar{
				Context: string(ctx),
				Color:   color,
				Height:  1,
				Width:   BarWidth,
			})
		}
		panels = append(panels, Panel{Key: string(sigtype.Bases[i]), Bars: bars})
	}

	return &ChartSpec{
		Title:                LegendTitle,
		YAxis:                YAxis{Min: 0, Max: 1},
		XAxis:                XAxis{ShowLabels: true, ShowTicks: true},
		FacetStripBackground: false,
		Legend:               false,
		Panels:               panels,
	}
}
