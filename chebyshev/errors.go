package chebyshev

import (
	"errors"
	"math"
)

var (
	// ErrInvalidSegmentLength is returned when a segment length is not a
	// finite, strictly positive number.
	ErrInvalidSegmentLength = errors.New("segment length must be finite and > 0")

	// ErrInvalidHalfWidth is returned when a segment half-width is not a
	// finite, strictly positive number.
	ErrInvalidHalfWidth = errors.New("segment half-width must be finite and > 0")

	// ErrInvalidNodeCount is returned when a node count is negative.
	ErrInvalidNodeCount = errors.New("node count must be >= 0")

	// ErrNonFiniteBound is returned when an interval bound is NaN or infinite.
	ErrNonFiniteBound = errors.New("interval bound must be finite")
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
