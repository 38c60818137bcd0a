// Package sigchart - chart-spec value objects and build options.
package sigchart

// DEFAULTS - single source of truth for chart geometry and labeling.
const (
	// BarWidth is the fixed bar width as a fraction of one category
	// slot. Bars narrower than the slot leave visible gaps between
	// neighbours.
	BarWidth = 0.75

	// MinYAxisMax is the floor on the y-axis upper bound. The axis
	// never shrinks below [0, 0.2] even when every proportion is
	// smaller, so charts of many signatures stay comparable.
	MinYAxisMax = 0.2

	// DefaultTitle is used when Options.Title is empty.
	DefaultTitle = "Mutation signature"
)

// Bar is one rendered bar: a flanking context, its palette color and
// its geometry. Height carries the entry's proportion verbatim.
type Bar struct {
	Context string  `json:"context"`
	Color   string  `json:"color"`
	Height  float64 `json:"height"`
	Width   float64 `json:"width"`
}

// Panel is one facet of the chart. Build keys panels by base-change
// class; BuildLegend keys them by 5′ flanking base.
type Panel struct {
	Key  string `json:"key"`
	Bars []Bar  `json:"bars"`
}

// YAxis is the explicit vertical range. Min is always 0.
type YAxis struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// XAxis holds the horizontal-axis decoration switches. Build leaves
// all of them false: context is conveyed by bar color, not by labels.
type XAxis struct {
	ShowLabels bool `json:"show_labels"`
	ShowTicks  bool `json:"show_ticks"`
	ShowTitle  bool `json:"show_title"`
}

// ChartSpec is the complete, immutable chart description returned by
// Build and BuildLegend. It contains everything a rendering layer
// needs — and nothing executable: no callbacks, no library handles.
type ChartSpec struct {
	Title                string  `json:"title"`
	YAxis                YAxis   `json:"y_axis"`
	XAxis                XAxis   `json:"x_axis"`
	FacetStripBackground bool    `json:"facet_strip_background"`
	Legend               bool    `json:"legend"`
	Panels               []Panel `json:"panels"`
}

// Options configures Build.
//
// Fields:
//   - Title — chart display title; empty means DefaultTitle.
//
// Example:
//
//	opts := sigchart.DefaultOptions()
//	opts.Title = "SBS5"
//	spec, err := sigchart.Build(tbl, &opts)
type Options struct {
	Title string
}

// DefaultOptions returns the documented defaults. Passing nil options
// to Build is equivalent to passing DefaultOptions().
func DefaultOptions() Options {
	return Options{Title: DefaultTitle}
}
