package chebyshev

import (
	"fmt"
	"slices"
)

// Segment is a Chebyshev expansion over the physical interval
// [mid - half, mid + half]. It maps the physical argument t onto the
// normalized argument tau = (t - mid) / half before evaluating.
//
// A Segment is immutable and safe for concurrent use. It performs no bounds
// checking: t outside of its interval is extrapolated.
type Segment[T Scalar[T]] struct {
	coeffs []T
	mid    float64
	half   float64
}

// NewSegment creates a new [Segment] from pre-computed coefficients and its
// domain. The coefficients are copied.
// Returns an error if mid is not finite or if half is not finite and > 0.
func NewSegment[T Scalar[T]](coeffs []T, mid, half float64) (*Segment[T], error) {

	if !isFinite(mid) {
		return nil, fmt.Errorf("chebyshev.NewSegment: %w: mid=%v", ErrNonFiniteBound, mid)
	}

	if !isFinite(half) || half <= 0 {
		return nil, fmt.Errorf("chebyshev.NewSegment: %w: half=%v", ErrInvalidHalfWidth, half)
	}

	return &Segment[T]{
		coeffs: slices.Clone(coeffs),
		mid:    mid,
		half:   half,
	}, nil
}

// FitSegment samples f at n Chebyshev nodes on [start, end] and returns
// the fitted [Segment].
// Returns an error if start or end is not finite or if end <= start.
func FitSegment[T Scalar[T]](f func(t float64) T, n int, start, end float64) (*Segment[T], error) {

	if !isFinite(start) || !isFinite(end) {
		return nil, fmt.Errorf("chebyshev.FitSegment: %w: start=%v, end=%v", ErrNonFiniteBound, start, end)
	}

	// end - start can be subnormal and halve to zero
	half := 0.5 * (end - start)

	if !(half > 0) {
		return nil, fmt.Errorf("chebyshev.FitSegment: %w: start=%v, end=%v", ErrInvalidHalfWidth, start, end)
	}

	return newFittedSegment(f, n, start, half), nil
}

// newFittedSegment fits f on [start, start + 2*half]. The half-width is
// taken as given and never recovered from the bounds, which can be equal
// once start + 2*half is rounded.
func newFittedSegment[T Scalar[T]](f func(t float64) T, n int, start, half float64) *Segment[T] {
	mid := start + half
	return &Segment[T]{
		coeffs: fitAround(f, n, mid, half),
		mid:    mid,
		half:   half,
	}
}

// Normalize maps the physical argument t onto tau = (t - mid) / half.
func (s *Segment[T]) Normalize(t float64) float64 {
	return (t - s.mid) / s.half
}

// Evaluate returns the value of the expansion at the physical argument t.
func (s *Segment[T]) Evaluate(t float64) T {
	return Evaluate(s.coeffs, s.Normalize(t))
}

// EvaluateDerivative returns the derivative with respect to t of the
// expansion at the physical argument t, that is dy/dtau / half.
func (s *Segment[T]) EvaluateDerivative(t float64) T {
	return EvaluateDerivative(s.coeffs, s.Normalize(t)).Div(s.half)
}

// EvaluateBoth returns the value and the derivative with respect to t of
// the expansion at the physical argument t, in a single pass.
func (s *Segment[T]) EvaluateBoth(t float64) (y, dy T) {
	y, dy = EvaluateBoth(s.coeffs, s.Normalize(t))
	return y, dy.Div(s.half)
}

// Mid returns the midpoint of the segment domain.
func (s *Segment[T]) Mid() float64 {
	return s.mid
}

// Half returns the half-width of the segment domain.
func (s *Segment[T]) Half() float64 {
	return s.half
}

// Start returns mid - half.
func (s *Segment[T]) Start() float64 {
	return s.mid - s.half
}

// End returns mid + half.
func (s *Segment[T]) End() float64 {
	return s.mid + s.half
}

// Len returns the number of coefficients of the segment.
func (s *Segment[T]) Len() int {
	return len(s.coeffs)
}

// Coefficients returns a copy of the Chebyshev coefficients of the segment.
func (s *Segment[T]) Coefficients() []T {
	return slices.Clone(s.coeffs)
}
