// Package mutsig is an in-memory toolkit for working with 96-category
// mutational signatures — parsing mutation-type labels, assembling and
// reshaping signature catalogs, simulating mutation counts from a known
// signature, and producing renderer-agnostic chart specifications.
//
// 🚀 What is mutsig?
//
//	A small, deterministic library around the standard single-base
//	substitution classification used in cancer genomics:
//	  • SBS labels of the form X[Y>Z]W — a base change Y>Z plus its
//	    5′ and 3′ flanking bases (96 categories: 4 × 6 × 4)
//	  • Signature tables: ordered (mutation type, proportion) records
//	  • Catalog simulation: draw mutation counts from a signature
//	  • Chart specs: faceted bar-chart descriptions ready for any
//	    rendering layer — no plotting library is imported or required
//
// ✨ Why choose mutsig?
//
//   - Strict input grammar – malformed labels and non-finite or
//     negative proportions fail fast with sentinel errors
//   - Deterministic – no global state; simulation is seed-driven and
//     reproducible across platforms
//   - Pure Go – no cgo, no I/O, no rendering dependency
//   - Composable – each concern lives in its own subpackage
//
// Under the hood, everything is organized under four subpackages:
//
//	sigtype/  — the X[Y>Z]W grammar: parsing, canonical enumeration
//	catalog/  — signature tables: validation, grouping, reshaping
//	sigchart/ — chart-spec construction: panels, bars, fixed palette
//	simulate/ — seeded catalog simulation from a known signature
//
// Quick example:
//
//	tbl, _ := catalog.New(
//	    catalog.Entry{Type: "A[C>A]A", Proportion: 0.6},
//	    catalog.Entry{Type: "T[T>G]C", Proportion: 0.4},
//	)
//	spec, _ := sigchart.Build(tbl, nil)
//	// spec.Panels → one panel per base-change class, colored bars
//
// Fitting observed catalogs against reference signatures (non-negative
// least squares, Bayesian exposure estimation) is deliberately left to
// external packages; their output is consumed here as a catalog.Table.
//
// See each subpackage's doc.go for details and examples.
package mutsig
