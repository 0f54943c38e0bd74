package chebyshev

import (
	"encoding/json"
	"fmt"
	"math"
)

// maxSegments bounds the number of segments a single table can hold.
const maxSegments = math.MaxInt32

// ParametersLiteral is a literal representation of the parameters of a
// segment [Table]. It has public fields and is used to express unchecked
// user-defined parameters literally into Go programs.
// [NewParametersFromLiteral] validates it and returns a [Parameters].
//
// Nodes is the number of Chebyshev nodes (and coefficients) per segment.
// [Start, End) is the domain to cover and SegmentLength the duration of
// every segment. The covered domain is extended past End when the span is
// not a multiple of SegmentLength.
type ParametersLiteral struct {
	Nodes         int
	Start         float64
	End           float64
	SegmentLength float64
}

// Parameters represents a validated set of segment table parameters.
// Its fields are private and immutable. See [ParametersLiteral] for
// user-specified parameters.
type Parameters struct {
	nodes         int
	start         float64
	end           float64
	segmentLength float64
	segmentCount  int
}

// NewParameters instantiates a set of [Parameters] from the node count, the
// domain [start, end) and the segment length.
// Returns an error if:
//   - nodes < 0
//   - start or end is NaN or infinite
//   - segmentLength is not finite and > 0, or would produce more than
//     math.MaxInt32 segments.
func NewParameters(nodes int, start, end, segmentLength float64) (params Parameters, err error) {

	if nodes < 0 {
		return Parameters{}, fmt.Errorf("chebyshev.NewParameters: %w: nodes=%d", ErrInvalidNodeCount, nodes)
	}

	if !isFinite(start) || !isFinite(end) {
		return Parameters{}, fmt.Errorf("chebyshev.NewParameters: %w: start=%v, end=%v", ErrNonFiniteBound, start, end)
	}

	var count int
	if count, err = segmentCount(end-start, segmentLength); err != nil {
		return Parameters{}, fmt.Errorf("chebyshev.NewParameters: %w", err)
	}

	return Parameters{
		nodes:         nodes,
		start:         start,
		end:           end,
		segmentLength: segmentLength,
		segmentCount:  count,
	}, nil
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a
// [ParametersLiteral] specification. See [NewParameters] for the errors.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {
	return NewParameters(paramDef.Nodes, paramDef.Start, paramDef.End, paramDef.SegmentLength)
}

// segmentCount returns max(1, ceil(span / segmentLength)).
func segmentCount(span, segmentLength float64) (int, error) {

	// the half-width of every segment must be > 0
	if !isFinite(segmentLength) || !(0.5*segmentLength > 0) {
		return 0, fmt.Errorf("%w: segmentLength=%v", ErrInvalidSegmentLength, segmentLength)
	}

	q := math.Ceil(span / segmentLength)

	if q > maxSegments {
		return 0, fmt.Errorf("%w: span=%v, segmentLength=%v gives %v segments (max %d)", ErrInvalidSegmentLength, span, segmentLength, q, maxSegments)
	}

	if q < 1 {
		return 1, nil
	}

	return int(q), nil
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Nodes:         p.nodes,
		Start:         p.start,
		End:           p.end,
		SegmentLength: p.segmentLength,
	}
}

// Nodes returns the number of Chebyshev nodes per segment.
func (p Parameters) Nodes() int {
	return p.nodes
}

// Start returns the start of the domain.
func (p Parameters) Start() float64 {
	return p.start
}

// End returns the requested end of the domain.
// See [Parameters.CoveredEnd] for the end of the domain actually covered.
func (p Parameters) End() float64 {
	return p.end
}

// SegmentLength returns the duration of each segment.
func (p Parameters) SegmentLength() float64 {
	return p.segmentLength
}

// SegmentCount returns max(1, ceil((end-start)/segmentLength)).
func (p Parameters) SegmentCount() int {
	return p.segmentCount
}

// CoveredEnd returns start + SegmentCount() * segmentLength, which is
// greater than or equal to End().
func (p Parameters) CoveredEnd() float64 {
	return p.start + float64(p.segmentCount)*p.segmentLength
}

// Equal returns true if the receiver is equal to the other.
func (p Parameters) Equal(other *Parameters) bool {
	return p.nodes == other.nodes &&
		p.start == other.start &&
		p.end == other.end &&
		p.segmentLength == other.segmentLength
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
