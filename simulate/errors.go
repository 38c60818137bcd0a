package simulate

import "errors"

var (
	// ErrZeroMass indicates a signature whose proportions are all zero
	// (or an empty table) — there is no distribution to sample from.
	ErrZeroMass = errors.New("simulate: signature has zero total weight")

	// ErrBadMutationCount indicates a non-positive Mutations option.
	ErrBadMutationCount = errors.New("simulate: mutation count must be positive")

	// ErrBadReplicates indicates a non-positive replicate count.
	ErrBadReplicates = errors.New("simulate: replicate count must be positive")
)
