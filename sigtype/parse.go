package sigtype

import (
	"fmt"
	"strings"
)

// Byte offsets within a well-formed 7-byte X[Y>Z]W label.
const (
	posFivePrime  = 0
	posOpen       = 1
	posRef        = 2
	posArrow      = 3
	posAlt        = 4
	posClose      = 5
	posThreePrime = 6

	labelLen = 7
)

// Parse decomposes a mutation-type label into its flanking bases and
// base-change class.
//
// Grammar (exact, byte-positional):
//
//	X [ Y > Z ] W
//	0 1 2 3 4 5 6
//
//	X, W ∈ {A,C,G,T}; Y>Z one of the six canonical classes.
//
// The grammar is fixed and finite (96 valid values), so Parse is a
// bounds-checked byte inspection rather than a regular expression; the
// error text names the first offending position.
//
// Errors:
//   - ErrBadLabel (wrapping ErrInputFormat) — wrong length, bad flank,
//     missing bracket or arrow, or a non-canonical base change.
//
// Complexity: O(1).
func Parse(label string) (Parsed, error) {
	if len(label) != labelLen {
		return Parsed{}, fmt.Errorf("%w: %q has length %d, want %d",
			ErrBadLabel, label, len(label), labelLen)
	}
	if !isBase(label[posFivePrime]) {
		return Parsed{}, fmt.Errorf("%w: %q: 5′ flank %q is not one of %s",
			ErrBadLabel, label, label[posFivePrime], Bases)
	}
	if label[posOpen] != '[' || label[posClose] != ']' {
		return Parsed{}, fmt.Errorf("%w: %q: base change must be bracketed as [Y>Z]",
			ErrBadLabel, label)
	}
	if label[posArrow] != '>' {
		return Parsed{}, fmt.Errorf("%w: %q: missing '>' between reference and alternate base",
			ErrBadLabel, label)
	}
	if !isBase(label[posThreePrime]) {
		return Parsed{}, fmt.Errorf("%w: %q: 3′ flank %q is not one of %s",
			ErrBadLabel, label, label[posThreePrime], Bases)
	}

	change := BaseChange(label[posRef:posClose])
	if !isCanonicalChange(change) {
		return Parsed{}, fmt.Errorf("%w: %q: %q is not a canonical base change",
			ErrBadLabel, label, string(change))
	}

	return Parsed{
		FivePrime:  label[posFivePrime],
		Change:     change,
		ThreePrime: label[posThreePrime],
	}, nil
}

// isBase reports whether b is one of A, C, G, T.
func isBase(b byte) bool {
	return strings.IndexByte(Bases, b) >= 0
}

// isCanonicalChange reports whether c is one of the six pyrimidine-
// referenced classes. The reference is C or T and the alternate is any
// other base; purine-referenced changes (e.g. G>T) are rejected, since
// the classification collapses reverse-complement pairs.
func isCanonicalChange(c BaseChange) bool {
	switch c {
	case CtoA, CtoG, CtoT, TtoA, TtoC, TtoG:
		return true
	}
	return false
}
