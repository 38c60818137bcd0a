package sigchart

import (
	"math"

	"github.com/katalvlaran/mutsig/catalog"
	"github.com/katalvlaran/mutsig/sigtype"
)

// Build — SignatureChartBuilder
//
// Description:
//
//	Build transforms a signature table into a faceted bar-chart
//	specification: entries are grouped into panels by base-change
//	class, each entry becomes one bar colored by its flanking context,
//	and the chart carries an explicit y-axis range with a 0.2 floor.
//
// Outline:
//  1. Validate the table (all-or-nothing; see catalog.Table.Validate).
//  2. Derive (context, base change) per entry from its label.
//  3. Group entries into panels keyed by base change, canonical panel
//     order, input order within a panel; classes absent from the input
//     produce no panel.
//  4. y-axis = [0, max(MinYAxisMax, max proportion)].
//  5. Suppress x-axis labels/ticks/title, facet-strip background and
//     legend — context is conveyed by color, explained by BuildLegend.
//
// Proportions are used verbatim: Build neither renormalizes nor checks
// that they sum to 1. Duplicate labels stay separate bars.
//
// Errors:
//   - sigtype.ErrBadLabel / catalog.ErrBadProportion (both wrapping
//     sigtype.ErrInputFormat) — malformed label, or a proportion that
//     is negative, NaN or infinite. No partial ChartSpec is returned.
//
// Complexity: O(n) time, O(n) space.
func Build(t catalog.Table, opts *Options) (*ChartSpec, error) {
	groups, err := t.ByBaseChange() // validates every entry first
	if err != nil {
		return nil, err
	}

	title := DefaultTitle
	if opts != nil && opts.Title != "" {
		title = opts.Title
	}

	panels := make([]Panel, 0, len(groups))
	for _, bc := range sigtype.BaseChanges() {
		entries, ok := groups[bc]
		if !ok {
			continue
		}
		bars := make([]Bar, 0, len(entries))
		for _, e := range entries {
			p, _ := sigtype.Parse(string(e.Type)) // cannot fail after validation
			color, _ := ColorFor(p.Context())
			bars = append(bars, Bar{
				Context: string(p.Context()),
				Color:   color,
				Height:  e.Proportion,
				Width:   BarWidth,
			})
		}
		panels = append(panels, Panel{Key: string(bc), Bars: bars})
	}

	return &ChartSpec{
		Title:                title,
		YAxis:                YAxis{Min: 0, Max: math.Max(MinYAxisMax, t.MaxProportion())},
		XAxis:                XAxis{}, // labels, ticks and title all suppressed
		FacetStripBackground: false,
		Legend:               false,
		Panels:               panels,
	}, nil
}
