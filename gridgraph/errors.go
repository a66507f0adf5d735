package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is the umbrella error for any grid that cannot be built.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrMissingStart indicates no 'S' marker was found while markers are required.
	ErrMissingStart = fmt.Errorf("%w: no start marker", ErrMalformedGrid)
	// ErrMissingEnd indicates no 'E' marker was found while markers are required.
	ErrMissingEnd = fmt.Errorf("%w: no end marker", ErrMalformedGrid)
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)
