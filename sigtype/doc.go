// Package sigtype defines the 96-category mutation-type grammar used
// throughout mutsig and a strict parser for it.
//
// 🚀 What is a mutation type?
//
//	A label of the exact form X[Y>Z]W, where:
//	  • Y>Z is one of the six canonical base-change classes
//	    (C>A, C>G, C>T, T>A, T>C, T>G — pyrimidine-referenced after
//	    collapsing reverse-complement pairs)
//	  • X and W are the 5′ and 3′ flanking bases, each one of A,C,G,T
//	Exactly 96 labels exist: 4 flanks × 6 classes × 4 flanks.
//
// ✨ Key features:
//   - Parse — fixed-grammar, bounds-checked parsing (no regexp);
//     malformed labels fail with ErrBadLabel, which wraps the
//     package-wide ErrInputFormat umbrella
//   - Canonical — deterministic enumeration of all 96 labels, ordered
//     by base-change class, then 5′ flank, then 3′ flank
//   - BaseChanges / Contexts — the 6 classes and the 16 flanking-base
//     pairs in their fixed order
//
// The label → (context, base change) mapping is a bijection onto its
// image: every canonical label derives exactly one of the 6 classes
// and one of the 16 contexts, and no two labels collide.
//
// ⚙️ Usage:
//
//	p, err := sigtype.Parse("A[C>G]T")
//	if err != nil {
//	    // errors.Is(err, sigtype.ErrInputFormat) == true
//	}
//	p.Change    // sigtype.CtoG ("C>G")
//	p.Context() // sigtype.Context("A-T")
//
// All values are plain immutable data; the package holds no state and
// is safe for concurrent use.
package sigtype
