// Package sigchart builds renderer-agnostic bar-chart specifications
// for 96-category mutational signatures.
//
// 🚀 What does it produce?
//
//	Build turns a catalog.Table into an immutable ChartSpec value:
//	  • one panel per base-change class present in the input, in
//	    canonical order (C>A, C>G, C>T, T>A, T>C, T>G)
//	  • one bar per entry, height = proportion, width fixed at 0.75 of
//	    a category slot, fill color from the fixed context palette
//	  • y-axis [0, max(0.2, data max)] — the 0.2 floor keeps small
//	    signatures legible and charts comparable side by side
//	  • x-axis labels, ticks and title suppressed (96 context labels
//	    are too dense to render); facet-strip decoration and legend off
//
// ✨ Key features:
//   - ChartSpec is pure data — axis ranges, panels, bar geometry and
//     colors. Rendering is deferred to any layer that can draw grouped
//     bar charts; nothing here imports a plotting library
//   - Fixed ColorAssignment: the 16 flanking contexts map to 4 hue
//     blocks (one per 5′ base) with a rising saturation ramp inside
//     each block, at constant brightness
//   - BuildLegend emits the companion chart that explains the palette,
//     since the signature chart itself renders no legend
//
// ⚙️ Usage:
//
//	opts := sigchart.DefaultOptions()
//	opts.Title = "SBS1"
//	spec, err := sigchart.Build(tbl, &opts)
//	if err != nil {
//	    // errors.Is(err, sigtype.ErrInputFormat) == true for any
//	    // malformed label or invalid proportion
//	}
//
// Build is a pure transformation: no I/O, no randomness, no shared
// mutable state. The palette is immutable after package init, so Build
// is safe to call concurrently from independent call sites.
package sigchart
