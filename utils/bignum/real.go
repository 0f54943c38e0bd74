package bignum

import (
	"math/big"
)

// Real is an arbitrary precision real number. It satisfies the
// chebyshev.Scalar contract and can therefore be fitted and evaluated
// without loss of the dynamic range of big.Float.
//
// The zero value of Real is 0. A Real is never modified after its creation:
// every operation allocates its result. The precision of a result is the
// largest precision of its operands.
type Real struct {
	v *big.Float
}

// NewReal creates a new Real with prec bits of precision.
// See [NewFloat] for the valid types of x.
func NewReal(x interface{}, prec uint) Real {
	return Real{NewFloat(x, prec)}
}

// RealFunc lifts a function on big.Float into a function on float64
// returning [Real], so that it can be used as a sampler. The argument is
// converted with prec bits of precision.
func RealFunc(f func(x *big.Float) *big.Float, prec uint) func(t float64) Real {
	return func(t float64) Real {
		return Real{f(NewFloat(t, prec))}
	}
}

// Add returns a + b.
func (a Real) Add(b Real) Real {
	switch {
	case a.v == nil:
		return b
	case b.v == nil:
		return a
	}
	return Real{new(big.Float).Add(a.v, b.v)}
}

// Sub returns a - b.
func (a Real) Sub(b Real) Real {
	switch {
	case b.v == nil:
		return a
	case a.v == nil:
		return Real{new(big.Float).Neg(b.v)}
	}
	return Real{new(big.Float).Sub(a.v, b.v)}
}

// Mul returns a * s.
// Panics with big.ErrNaN if s is NaN.
func (a Real) Mul(s float64) Real {
	if a.v == nil {
		return a
	}
	return Real{new(big.Float).Mul(a.v, new(big.Float).SetFloat64(s))}
}

// Div returns a / s.
// Panics with big.ErrNaN if s is NaN, or if a and s are both zero.
func (a Real) Div(s float64) Real {
	if a.v == nil {
		return a
	}
	return Real{new(big.Float).Quo(a.v, new(big.Float).SetFloat64(s))}
}

// Prec returns the precision of a in bits, 0 for the zero value.
func (a Real) Prec() uint {
	if a.v == nil {
		return 0
	}
	return a.v.Prec()
}

// Float64 returns the float64 value nearest to a.
func (a Real) Float64() float64 {
	if a.v == nil {
		return 0
	}
	f, _ := a.v.Float64()
	return f
}

// BigFloat returns a copy of the value of a.
func (a Real) BigFloat() *big.Float {
	if a.v == nil {
		return new(big.Float)
	}
	return new(big.Float).Copy(a.v)
}

// String returns a in decimal notation with 10 significant digits.
func (a Real) String() string {
	return a.BigFloat().Text('g', 10)
}
