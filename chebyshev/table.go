package chebyshev

import (
	"fmt"
	"slices"
)

// Table is a piecewise Chebyshev approximation made of segments of
// identical duration covering [Start(), End()). Segment i covers
// [start + i*segmentLength, start + (i+1)*segmentLength), which makes
// the lookup of the segment containing t O(1).
//
// A Table is immutable and safe for concurrent use.
type Table[T Scalar[T]] struct {
	start         float64
	segmentLength float64
	segments      []*Segment[T]
}

// NewTable builds a [Table] by splitting the domain of params into
// params.SegmentCount() segments and fitting f independently on each of
// them with params.Nodes() nodes.
//
// When the span is not a multiple of the segment length, the last segment
// extends past params.End(). A span <= 0 still produces one segment.
func NewTable[T Scalar[T]](f func(t float64) T, params Parameters) (*Table[T], error) {

	if params.segmentCount == 0 {
		return nil, fmt.Errorf("chebyshev.NewTable: %w: uninitialized parameters", ErrInvalidSegmentLength)
	}

	segments := make([]*Segment[T], params.segmentCount)

	half := 0.5 * params.segmentLength

	for i := range segments {
		segments[i] = newFittedSegment(f, params.nodes, params.start+float64(i)*params.segmentLength, half)
	}

	return &Table[T]{
		start:         params.start,
		segmentLength: params.segmentLength,
		segments:      segments,
	}, nil
}

// NewTableFromSegments creates a [Table] from pre-computed segments, listed
// in chronological order, the first one starting at start.
// The contiguity and ordering of the segments is the responsibility of the
// caller and is not checked. An empty list of segments is accepted.
// Returns an error if start is not finite or if segmentLength is not finite and > 0.
func NewTableFromSegments[T Scalar[T]](segments []*Segment[T], start, segmentLength float64) (*Table[T], error) {

	if !isFinite(start) {
		return nil, fmt.Errorf("chebyshev.NewTableFromSegments: %w: start=%v", ErrNonFiniteBound, start)
	}

	if !isFinite(segmentLength) || segmentLength <= 0 {
		return nil, fmt.Errorf("chebyshev.NewTableFromSegments: %w: segmentLength=%v", ErrInvalidSegmentLength, segmentLength)
	}

	return &Table[T]{
		start:         start,
		segmentLength: segmentLength,
		segments:      slices.Clone(segments),
	}, nil
}

// Lookup returns the segment containing t and true, or nil and false if t
// is outside [Start(), End()). The upper bound is excluded: t == End()
// is out of range.
func (tab *Table[T]) Lookup(t float64) (*Segment[T], bool) {

	offset := t - tab.start

	// also rejects NaN
	if !(offset >= 0) {
		return nil, false
	}

	q := offset / tab.segmentLength

	if q >= float64(len(tab.segments)) {
		return nil, false
	}

	return tab.segments[int(q)], true
}

// Evaluate returns the value of the approximation at t and true, or the
// zero value and false if t is out of range.
func (tab *Table[T]) Evaluate(t float64) (y T, ok bool) {
	var s *Segment[T]
	if s, ok = tab.Lookup(t); ok {
		y = s.Evaluate(t)
	}
	return
}

// EvaluateDerivative returns the derivative with respect to t of the
// approximation at t and true, or the zero value and false if t is out of range.
func (tab *Table[T]) EvaluateDerivative(t float64) (dy T, ok bool) {
	var s *Segment[T]
	if s, ok = tab.Lookup(t); ok {
		dy = s.EvaluateDerivative(t)
	}
	return
}

// EvaluateBoth returns the value and the derivative with respect to t of
// the approximation at t and true, or zero values and false if t is out of range.
func (tab *Table[T]) EvaluateBoth(t float64) (y, dy T, ok bool) {
	var s *Segment[T]
	if s, ok = tab.Lookup(t); ok {
		y, dy = s.EvaluateBoth(t)
	}
	return
}

// Len returns the number of segments.
func (tab *Table[T]) Len() int {
	return len(tab.segments)
}

// IsEmpty returns true if the table has no segment.
func (tab *Table[T]) IsEmpty() bool {
	return len(tab.segments) == 0
}

// Start returns the start of the covered domain.
func (tab *Table[T]) Start() float64 {
	return tab.start
}

// End returns start + Len() * SegmentLength(), the excluded upper bound of
// the covered domain.
func (tab *Table[T]) End() float64 {
	return tab.start + float64(len(tab.segments))*tab.segmentLength
}

// SegmentLength returns the duration of each segment.
func (tab *Table[T]) SegmentLength() float64 {
	return tab.segmentLength
}

// Segment returns the i-th segment.
// Panics if i is out of range.
func (tab *Table[T]) Segment(i int) *Segment[T] {
	return tab.segments[i]
}

// Segments returns the segments in chronological order.
// The returned slice is a copy, the segments themselves are immutable.
func (tab *Table[T]) Segments() []*Segment[T] {
	return slices.Clone(tab.segments)
}
