// Package sigtype - core label grammar types and fixed enumerations.
package sigtype

// Bases lists the four nucleotides in the fixed order used everywhere
// in this module (flank enumeration, palette blocks, canonical labels).
const Bases = "ACGT"

// Cardinalities of the grammar. These are structural constants of the
// 96-category classification, not tunables.
const (
	// NumBaseChanges is the number of canonical base-change classes.
	NumBaseChanges = 6

	// NumContexts is the number of distinct (5′,3′) flanking-base pairs.
	NumContexts = 16

	// NumTypes is the total number of valid mutation-type labels.
	NumTypes = NumBaseChanges * NumContexts // 96
)

// MutationType is a raw mutation-type label of the form X[Y>Z]W.
// The type itself carries no validation; use Parse to check a value.
type MutationType string

// BaseChange is one of the six canonical base-change classes, e.g. "C>A".
type BaseChange string

// The six canonical base-change classes, pyrimidine-referenced.
const (
	CtoA BaseChange = "C>A"
	CtoG BaseChange = "C>G"
	CtoT BaseChange = "C>T"
	TtoA BaseChange = "T>A"
	TtoC BaseChange = "T>C"
	TtoG BaseChange = "T>G"
)

// Context is the hyphen-joined pair of flanking bases, e.g. "A-T" for a
// mutation with 5′ flank A and 3′ flank T.
type Context string

// Parsed is the decomposed form of a valid mutation-type label.
//
// Fields:
//   - FivePrime  — the base immediately 5′ of the mutated position.
//   - ThreePrime — the base immediately 3′ of the mutated position.
//   - Change     — the canonical base-change class between the brackets.
type Parsed struct {
	FivePrime  byte
	ThreePrime byte
	Change     BaseChange
}

// Context returns the flanking-base pair of p in hyphen-joined form.
func (p Parsed) Context() Context {
	return Context([]byte{p.FivePrime, '-', p.ThreePrime})
}

// String re-renders p as its canonical X[Y>Z]W label.
func (p Parsed) String() string {
	return string(p.FivePrime) + "[" + string(p.Change) + "]" + string(p.ThreePrime)
}

// Type is the MutationType form of String.
func (p Parsed) Type() MutationType {
	return MutationType(p.String())
}

// BaseChanges returns the six canonical base-change classes in their
// fixed order (C>A, C>G, C>T, T>A, T>C, T>G). The result is a fresh
// slice; callers may modify it freely.
func BaseChanges() []BaseChange {
	return []BaseChange{CtoA, CtoG, CtoT, TtoA, TtoC, TtoG}
}

// Contexts returns the sixteen flanking-base pairs in their fixed
// order: grouped by 5′ base (A, C, G, T), then by 3′ base within each
// group. This is the order the sigchart palette ramps over.
func Contexts() []Context {
	out := make([]Context, 0, NumContexts)
	for i := 0; i < len(Bases); i++ {
		for j := 0; j < len(Bases); j++ {
			out = append(out, Context([]byte{Bases[i], '-', Bases[j]}))
		}
	}
	return out
}

// Canonical returns all 96 valid mutation-type labels, ordered by
// base-change class, then 5′ flank, then 3′ flank. The result is a
// fresh slice; callers may modify it freely.
//
// Complexity: O(1) — the size is a structural constant.
func Canonical() []MutationType {
	out := make([]MutationType, 0, NumTypes)
	for _, bc := range BaseChanges() {
		for i := 0; i < len(Bases); i++ {
			for j := 0; j < len(Bases); j++ {
				p := Parsed{FivePrime: Bases[i], ThreePrime: Bases[j], Change: bc}
				out = append(out, p.Type())
			}
		}
	}
	return out
}
