package chebyshev

import (
	"github.com/tuneinsight/cheby/utils"
)

// Scalar is the arithmetic a value type must provide to be fitted and
// evaluated: addition and subtraction of two values of the same type, and
// multiplication and division by a dimensionless float64.
//
// The zero value of T must be the additive identity. This holds for any
// named float type and is the contract implementers of struct-based
// scalars (see bignum.Real) must honor.
//
// T can be a plain real (see [Float]) or a physically typed quantity whose
// unit is carried by the type, e.g.
//
//	type Kilometers float64
//
//	func (a Kilometers) Add(b Kilometers) Kilometers { return a + b }
//	func (a Kilometers) Sub(b Kilometers) Kilometers { return a - b }
//	func (a Kilometers) Mul(s float64) Kilometers    { return a * Kilometers(s) }
//	func (a Kilometers) Div(s float64) Kilometers    { return a / Kilometers(s) }
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
	Div(float64) T
}

// Float is a dimensionless real number implementing [Scalar].
type Float float64

// Add returns a + b.
func (a Float) Add(b Float) Float {
	return a + b
}

// Sub returns a - b.
func (a Float) Sub(b Float) Float {
	return a - b
}

// Mul returns a * s.
func (a Float) Mul(s float64) Float {
	return a * Float(s)
}

// Div returns a / s.
func (a Float) Div(s float64) Float {
	return a / Float(s)
}

// Float64 returns a as a float64.
func (a Float) Float64() float64 {
	return float64(a)
}

// Floats converts a slice of float64 into a new slice of [Float].
func Floats(v []float64) []Float {
	return utils.ConvertSlice[float64, Float](v)
}

// Float64s converts a slice of [Float] into a new slice of float64.
func Float64s(v []Float) []float64 {
	return utils.ConvertSlice[Float, float64](v)
}

// FloatFunc lifts a float64 function into a function returning [Float],
// so that it can be used as a sampler.
func FloatFunc(f func(float64) float64) func(float64) Float {
	return func(t float64) Float {
		return Float(f(t))
	}
}
