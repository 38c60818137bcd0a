package simulate

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/mutsig/catalog"
	"github.com/katalvlaran/mutsig/sigtype"
)

// DefaultMutations is the number of mutations drawn when Options is nil.
const DefaultMutations = 1000

// Options configures catalog simulation.
//
// Fields:
//   - Seed      — RNG seed; 0 selects the fixed default seed, so the
//     zero value is still fully reproducible.
//   - Mutations — how many mutations to draw per catalog; must be > 0.
//
// Example:
//
//	opts := simulate.DefaultOptions()
//	opts.Seed = 42
//	counts, err := simulate.Catalog(sig, &opts)
type Options struct {
	Seed      int64
	Mutations int
}

// DefaultOptions returns the documented defaults. Passing nil options
// to Catalog or Catalogs is equivalent to passing DefaultOptions().
func DefaultOptions() Options {
	return Options{Seed: 0, Mutations: DefaultMutations}
}

// Catalog draws opts.Mutations mutation types from the categorical
// distribution defined by sig and returns the count per type.
//
// Outline:
//  1. Validate sig (label grammar, finite non-negative proportions).
//  2. Build the cumulative-weight vector over entries with positive
//     proportion; duplicate labels simply contribute twice.
//  3. Draw by inverse transform: a uniform variate in [0, total) is
//     located in the cumulative vector by binary search.
//
// Proportions are arbitrary non-negative weights; sig does not need to
// sum to 1.
//
// Errors:
//   - sigtype.ErrInputFormat (via catalog validation) — malformed
//     label or invalid proportion.
//   - ErrZeroMass          — sig is empty or all proportions are zero.
//   - ErrBadMutationCount  — opts.Mutations <= 0.
//
// Complexity: O(n + m·log n) for n entries and m mutations.
func Catalog(sig catalog.Table, opts *Options) (map[sigtype.MutationType]int, error) {
	s, n, err := prepare(sig, opts)
	if err != nil {
		return nil, err
	}
	return s.draw(n, rngFromSeed(optSeed(opts))), nil
}

// Catalogs draws `replicates` independent catalogs from sig, each of
// opts.Mutations draws. Replicates use RNG streams derived from the
// base seed, so the whole set is reproducible while replicates stay
// decorrelated from each other.
//
// Errors: as Catalog, plus ErrBadReplicates for replicates <= 0.
//
// Complexity: O(n + r·m·log n).
func Catalogs(sig catalog.Table, replicates int, opts *Options) ([]map[sigtype.MutationType]int, error) {
	if replicates <= 0 {
		return nil, ErrBadReplicates
	}
	s, n, err := prepare(sig, opts)
	if err != nil {
		return nil, err
	}

	base := rngFromSeed(optSeed(opts))
	out := make([]map[sigtype.MutationType]int, replicates)
	for i := range out {
		out[i] = s.draw(n, deriveRNG(base, uint64(i)))
	}
	return out, nil
}

// sampler holds the cumulative-weight view of a validated signature.
type sampler struct {
	types      []sigtype.MutationType
	cumulative []float64 // strictly increasing; last element is the total mass
}

// prepare validates the inputs and builds the sampler.
func prepare(sig catalog.Table, opts *Options) (sampler, int, error) {
	if err := sig.Validate(); err != nil {
		return sampler{}, 0, err
	}
	n := DefaultMutations
	if opts != nil {
		n = opts.Mutations
	}
	if n <= 0 {
		return sampler{}, 0, ErrBadMutationCount
	}

	s := sampler{
		types:      make([]sigtype.MutationType, 0, len(sig)),
		cumulative: make([]float64, 0, len(sig)),
	}
	total := 0.0
	for _, e := range sig {
		if e.Proportion == 0 {
			continue // zero-weight categories can never be drawn
		}
		total += e.Proportion
		s.types = append(s.types, e.Type)
		s.cumulative = append(s.cumulative, total)
	}
	if len(s.types) == 0 {
		return sampler{}, 0, ErrZeroMass
	}
	return s, n, nil
}

// draw performs n inverse-transform draws using rng.
func (s sampler) draw(n int, rng *rand.Rand) map[sigtype.MutationType]int {
	total := s.cumulative[len(s.cumulative)-1]
	counts := make(map[sigtype.MutationType]int)
	for i := 0; i < n; i++ {
		u := rng.Float64() * total
		// First cumulative weight strictly above u; u < total guarantees
		// a hit within bounds.
		idx := sort.SearchFloat64s(s.cumulative, u)
		if s.cumulative[idx] == u {
			idx++ // SearchFloat64s returns the equal slot; step past it
		}
		if idx == len(s.types) {
			idx-- // guard against u landing exactly on the total
		}
		counts[s.types[idx]]++
	}
	return counts
}

// optSeed extracts the seed from possibly-nil options.
func optSeed(opts *Options) int64 {
	if opts == nil {
		return 0
	}
	return opts.Seed
}
