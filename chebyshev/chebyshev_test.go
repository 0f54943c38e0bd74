package chebyshev

import (
	"math"
	"strconv"
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/cheby/utils/sampling"
)

// Kilometers is a dimensioned scalar used to check that the algorithms are
// agnostic of the scalar type.
type Kilometers float64

func (a Kilometers) Add(b Kilometers) Kilometers { return a + b }
func (a Kilometers) Sub(b Kilometers) Kilometers { return a - b }
func (a Kilometers) Mul(s float64) Kilometers { return a * Kilometers(s) }
func (a Kilometers) Div(s float64) Kilometers { return a / Kilometers(s) }

// Angle wraps unit.Angle, which only provides scaling, into a Scalar.
type Angle unit.Angle

func (a Angle) Add(b Angle) Angle { return a + b }
func (a Angle) Sub(b Angle) Angle { return a - b }
func (a Angle) Mul(s float64) Angle { return Angle(unit.Angle(a).Mul(s)) }
func (a Angle) Div(s float64) Angle { return Angle(unit.Angle(a).Div(s)) }
func (a Angle) Rad() float64 { return unit.Angle(a).Rad() }

func itoa(n int) string {
	return strconv.Itoa(n)
}

// randomCoefficients returns n deterministic pseudo-random coefficients in [-1, 1].
func randomCoefficients(t testing.TB, label string, n int) []Float {
	prng, err := sampling.NewLabelledPRNG(label)
	require.NoError(t, err)
	return Floats(sampling.RandFloat64s(prng, n, -1, 1))
}

func TestFloat(t *testing.T) {

	a, b := Float(1.5), Float(-0.5)

	require.Equal(t, Float(1), a.Add(b))
	require.Equal(t, Float(2), a.Sub(b))
	require.Equal(t, Float(3), a.Mul(2))
	require.Equal(t, Float(0.75), a.Div(2))
	require.Equal(t, 1.5, a.Float64())

	var zero Float
	require.Equal(t, a, zero.Add(a))

	v := []float64{1, -2.5, math.Pi}
	require.Equal(t, v, Float64s(Floats(v)))
	require.Equal(t, Float(7), FloatFunc(func(t float64) float64 { return t + 5 })(2))
}

func TestScalarTypes(t *testing.T) {

	xi := Nodes(9)

	t.Run("Kilometers", func(t *testing.T) {

		values := make([]Kilometers, len(xi))
		f64 := make([]Float, len(xi))
		for k := range xi {
			values[k] = Kilometers(1000 * math.Sin(xi[k]))
			f64[k] = Float(1000 * math.Sin(xi[k]))
		}

		coeffs := FitCoefficients(values)
		want := FitCoefficients(f64)

		for _, tau := range []float64{-1, -0.4, 0, 0.8} {
			require.InDelta(t, float64(Evaluate(want, tau)), float64(Evaluate(coeffs, tau)), 1e-10)
			require.InDelta(t, float64(EvaluateDerivative(want, tau)), float64(EvaluateDerivative(coeffs, tau)), 1e-10)
		}
	})

	t.Run("Angle", func(t *testing.T) {

		// a bearing sweeping from 10° to 50° over [0, 4]
		f := func(t float64) Angle {
			return Angle(unit.AngleFromDeg(10 + 10*t + 2*math.Sin(t)))
		}

		seg, err := FitSegment(f, 17, 0, 4)
		require.NoError(t, err)

		for _, x := range []float64{0.1, 1.3, 2.0, 3.7} {
			y, dy := seg.EvaluateBoth(x)
			require.InDelta(t, f(x).Rad(), y.Rad(), 1e-12)
			require.InDelta(t, unit.AngleFromDeg(10+2*math.Cos(x)).Rad(), dy.Rad(), 1e-10)
		}
	})
}
