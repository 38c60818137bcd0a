package sigtype

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat is the umbrella error for every malformed input the
	// module rejects: bad mutation-type labels here, and bad proportions
	// in package catalog. Match it with errors.Is to catch either.
	ErrInputFormat = errors.New("mutsig: invalid input format")

	// ErrBadLabel indicates a mutation-type label that does not match the
	// X[Y>Z]W grammar. It wraps ErrInputFormat.
	ErrBadLabel = fmt.Errorf("sigtype: label does not match X[Y>Z]W: %w", ErrInputFormat)
)
