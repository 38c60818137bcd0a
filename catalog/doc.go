// Package catalog defines signature tables — ordered collections of
// (mutation type, proportion) records — and the reshaping operations
// the rest of mutsig is built on.
//
// 🚀 What is a signature table?
//
//	An ordered slice of Entry values, one per 96-category mutation
//	type. Tables may be sparse (fewer than 96 rows) and may contain
//	duplicate labels; both are carried through unchanged. Proportions
//	are arbitrary non-negative weights — nothing here requires or
//	enforces that they sum to 1.
//
// ✨ Key features:
//   - New / Validate — all-or-nothing input checking: every label must
//     match the X[Y>Z]W grammar and every proportion must be a finite,
//     non-negative number; the first offense fails the whole table
//   - ByBaseChange / ByContext — explicit typed grouping into the 6
//     base-change classes or the 16 flanking contexts, preserving
//     input order within each group
//   - Complete — join a sparse table against the full 96-row template,
//     zero-filling missing categories in canonical order
//   - FromCounts — turn an observed mutation-count catalog into a
//     proportion table
//   - Normalize — explicit, opt-in rescaling to unit total; never
//     applied implicitly anywhere in the module
//
// ⚙️ Usage:
//
//	tbl, err := catalog.New(
//	    catalog.Entry{Type: "A[C>A]A", Proportion: 0.7},
//	    catalog.Entry{Type: "G[T>C]C", Proportion: 0.3},
//	)
//	full, _ := catalog.Complete(tbl) // 96 rows, zeros elsewhere
//	byClass, _ := tbl.ByBaseChange() // map of 6 groups (2 present here)
//
// Tables are plain values; all operations return fresh data and are
// safe for concurrent use.
package catalog
