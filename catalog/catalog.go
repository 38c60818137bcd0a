package catalog

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/mutsig/sigtype"
)

// Entry is one signature record: a mutation-type label and its weight.
// Field tags mirror the conventional column names of signature tables.
type Entry struct {
	Type       sigtype.MutationType `json:"mutation_type"`
	Proportion float64              `json:"proportion"`
}

// Table is an ordered collection of signature entries. It may be
// sparse, and duplicate labels are tolerated (they stay separate rows).
type Table []Entry

// New builds a validated Table from entries. Validation is
// all-or-nothing: the first malformed label or invalid proportion
// fails the whole call and no table is returned.
//
// Errors:
//   - sigtype.ErrBadLabel  — a label does not match X[Y>Z]W.
//   - ErrBadProportion     — a proportion is negative, NaN or infinite.
//
// Both wrap sigtype.ErrInputFormat.
func New(entries ...Entry) (Table, error) {
	t := make(Table, len(entries))
	copy(t, entries)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks every entry of t against the label grammar and the
// proportion constraints. See New for the error contract.
//
// Complexity: O(n).
func (t Table) Validate() error {
	for i, e := range t {
		if _, err := sigtype.Parse(string(e.Type)); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if math.IsNaN(e.Proportion) || math.IsInf(e.Proportion, 0) || e.Proportion < 0 {
			return fmt.Errorf("entry %d (%q): got %v: %w", i, e.Type, e.Proportion, ErrBadProportion)
		}
	}
	return nil
}

// ByBaseChange groups t into the six base-change classes. Input order
// is preserved within each group; classes with no entries are absent
// from the result. The table is validated first.
//
// Complexity: O(n).
func (t Table) ByBaseChange() (map[sigtype.BaseChange]Table, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	grouped := lo.GroupBy([]Entry(t), func(e Entry) sigtype.BaseChange {
		p, _ := sigtype.Parse(string(e.Type)) // cannot fail after Validate
		return p.Change
	})
	out := make(map[sigtype.BaseChange]Table, len(grouped))
	for bc, entries := range grouped {
		out[bc] = Table(entries)
	}
	return out, nil
}

// ByContext groups t into the sixteen flanking-base contexts. Input
// order is preserved within each group; absent contexts are omitted.
// The table is validated first.
//
// Complexity: O(n).
func (t Table) ByContext() (map[sigtype.Context]Table, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	grouped := lo.GroupBy([]Entry(t), func(e Entry) sigtype.Context {
		p, _ := sigtype.Parse(string(e.Type))
		return p.Context()
	})
	out := make(map[sigtype.Context]Table, len(grouped))
	for ctx, entries := range grouped {
		out[ctx] = Table(entries)
	}
	return out, nil
}

// MaxProportion returns the largest proportion in t, or 0 for an empty
// table. It assumes t has been validated.
func (t Table) MaxProportion() float64 {
	if len(t) == 0 {
		return 0
	}
	return lo.MaxBy([]Entry(t), func(a, b Entry) bool {
		return a.Proportion > b.Proportion
	}).Proportion
}

// Total returns the sum of all proportions in t.
func (t Table) Total() float64 {
	return lo.SumBy([]Entry(t), func(e Entry) float64 { return e.Proportion })
}

// Normalize returns a copy of t rescaled so that proportions sum to 1.
// A table with zero total is returned unchanged (as a copy) — there is
// no mass to distribute. Normalize is never applied implicitly by any
// other operation in this module.
func (t Table) Normalize() Table {
	out := make(Table, len(t))
	copy(out, t)
	total := t.Total()
	if total == 0 {
		return out
	}
	for i := range out {
		out[i].Proportion /= total
	}
	return out
}

// Complete joins t against the full 96-category template: the result
// has exactly one row per canonical mutation type, in canonical order,
// with missing categories zero-filled. Duplicate labels in t are
// summed into their single template row. The table is validated first.
//
// Complexity: O(n + 96).
func Complete(t Table) (Table, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	mass := make(map[sigtype.MutationType]float64, len(t))
	for _, e := range t {
		mass[e.Type] += e.Proportion
	}
	out := make(Table, 0, sigtype.NumTypes)
	for _, label := range sigtype.Canonical() {
		out = append(out, Entry{Type: label, Proportion: mass[label]})
	}
	return out, nil
}

// FromCounts converts an observed mutation-count catalog into a
// proportion table, one row per counted type in canonical order.
// Types absent from counts are omitted (use Complete to zero-fill).
// An all-zero catalog yields zero proportions rather than an error.
//
// Errors:
//   - sigtype.ErrBadLabel — a key does not match X[Y>Z]W.
//   - ErrBadCount         — a count is negative.
func FromCounts(counts map[sigtype.MutationType]int) (Table, error) {
	total := 0
	for label, n := range counts {
		if _, err := sigtype.Parse(string(label)); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%q: got %d: %w", label, n, ErrBadCount)
		}
		total += n
	}
	out := make(Table, 0, len(counts))
	for _, label := range sigtype.Canonical() {
		n, ok := counts[label]
		if !ok {
			continue
		}
		p := 0.0
		if total > 0 {
			p = float64(n) / float64(total)
		}
		out = append(out, Entry{Type: label, Proportion: p})
	}
	return out, nil
}
