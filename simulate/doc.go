// Package simulate draws synthetic mutation catalogs from a known
// signature — the "generate data with a known answer" half of a
// signature-analysis workflow, used to exercise fitting pipelines and
// charting on input whose ground truth is known.
//
// 🚀 What does it do?
//
//	Catalog treats a signature table as a categorical distribution over
//	the 96 mutation types and draws N mutations from it, returning a
//	count per type. Catalogs produces independent replicate catalogs
//	from derived random streams.
//
// ✨ Key features:
//   - Deterministic: seed-driven RNG, same seed ⇒ identical catalog on
//     every platform; seed 0 selects a fixed default seed
//   - Weighted sampling by cumulative proportion with binary search —
//     O(log n) per draw
//   - Same strict input contract as the rest of the module: the
//     signature is validated before any sampling happens
//
// ⚙️ Usage:
//
//	opts := simulate.DefaultOptions()
//	opts.Seed = 42
//	opts.Mutations = 5000
//	counts, err := simulate.Catalog(signature, &opts)
//	// counts: map[sigtype.MutationType]int, summing to 5000
//
//	tbl, _ := catalog.FromCounts(counts) // back to a proportion table
//
// The signature's proportions need not sum to 1 — they are arbitrary
// non-negative weights; only their relative sizes matter here.
//
// Concurrency: each call builds its own RNG; no state is shared. Do
// not reuse one *rand.Rand across goroutines elsewhere — this package
// never does.
package simulate
