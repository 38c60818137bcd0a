package catalog

import (
	"fmt"

	"github.com/katalvlaran/mutsig/sigtype"
)

var (
	// ErrBadProportion indicates a proportion that is negative, NaN or
	// infinite. It wraps sigtype.ErrInputFormat.
	ErrBadProportion = fmt.Errorf("catalog: proportion must be a finite, non-negative number: %w", sigtype.ErrInputFormat)

	// ErrBadCount indicates a negative mutation count passed to
	// FromCounts. It wraps sigtype.ErrInputFormat.
	ErrBadCount = fmt.Errorf("catalog: count must be non-negative: %w", sigtype.ErrInputFormat)
)
