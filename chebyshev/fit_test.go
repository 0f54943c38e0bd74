package chebyshev

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/cheby/utils"
)

func TestFitCoefficients(t *testing.T) {

	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, FitCoefficients([]Float{}))
		require.Empty(t, FitFunction(FloatFunc(math.Sin), 0, 0, 1))
	})

	t.Run("Constant", func(t *testing.T) {
		for n := 1; n <= 40; n++ {
			values := make([]Float, n)
			for k := range values {
				values[k] = 5
			}
			coeffs := FitCoefficients(values)
			require.Len(t, coeffs, n)
			require.InDelta(t, 5, float64(coeffs[0]), 1e-14, "n=%d", n)
			for j := 1; j < n; j++ {
				require.InDelta(t, 0, float64(coeffs[j]), 5e-15*float64(n), "n=%d, j=%d", n, j)
			}
		}
	})

	t.Run("Linear", func(t *testing.T) {
		// f(x) = x -> c = [0, 1, 0, ...]
		coeffs := FitCoefficients(Floats(Nodes(9)))
		want := []float64{0, 1, 0, 0, 0, 0, 0, 0, 0}
		require.True(t, cmp.Equal(want, Float64s(coeffs), cmpopts.EquateApprox(0, 1e-14)), cmp.Diff(want, Float64s(coeffs)))
	})

	t.Run("ChebyshevBasis", func(t *testing.T) {
		// f(x) = T_3(x) = 4x^3 - 3x -> c = e_3
		xi := Nodes(7)
		values := make([]Float, len(xi))
		for k, x := range xi {
			values[k] = Float(4*x*x*x - 3*x)
		}
		want := []float64{0, 0, 0, 1, 0, 0, 0}
		got := Float64s(FitCoefficients(values))
		require.True(t, cmp.Equal(want, got, cmpopts.EquateApprox(0, 1e-14)), cmp.Diff(want, got))
	})

	t.Run("RoundTrip/Nodes", func(t *testing.T) {
		for _, n := range []int{1, 2, 5, 16, 32} {
			xi := Nodes(n)
			values := randomCoefficients(t, "round-trip/"+itoa(n), n)
			coeffs := FitCoefficients(values)
			have := make([]float64, n)
			for k := range xi {
				have[k] = float64(Evaluate(coeffs, xi[k]))
			}
			require.LessOrEqual(t, utils.MaxAbsDistance(Float64s(values), have), 1e-13, "n=%d", n)
		}
	})

	t.Run("RoundTrip/UnitInterval", func(t *testing.T) {
		f := func(x float64) float64 { return math.Sin(2.5*x) + 0.2*x*x }
		xi := Nodes(17)
		values := make([]Float, len(xi))
		for k := range xi {
			values[k] = Float(f(xi[k]))
		}
		coeffs := FitCoefficients(values)
		for _, tau := range []float64{-0.95, -0.5, 0, 0.37, 0.9} {
			require.InDelta(t, f(tau), float64(Evaluate(coeffs, tau)), 1e-12)
		}
	})
}

func TestFitFunction(t *testing.T) {

	t.Run("Sin/UnitInterval", func(t *testing.T) {
		coeffs := FitFunction(FloatFunc(math.Sin), 15, -1, 1)
		for _, x := range []float64{-0.9, -0.5, 0, 0.3, 0.8} {
			require.InDelta(t, math.Sin(x), float64(Evaluate(coeffs, x)), 1e-12)
		}
	})

	t.Run("Sin/Mapped", func(t *testing.T) {
		coeffs := FitFunction(FloatFunc(math.Sin), 15, 0, math.Pi)
		// t = pi/2 -> tau = 0
		require.InDelta(t, 1, float64(Evaluate(coeffs, 0)), 1e-12)
		// t = pi/4 -> tau = -0.5
		require.InDelta(t, 0.7071067812, float64(Evaluate(coeffs, -0.5)), 1e-10)
	})

	t.Run("Exp/Mapped", func(t *testing.T) {
		start, end := -2.0, 4.0
		mid, half := 0.5*(start+end), 0.5*(end-start)
		f := func(t float64) float64 { return math.Exp(t) / 10 }
		coeffs := FitFunction(FloatFunc(f), 21, start, end)
		for _, x := range []float64{-1.8, -0.3, 1, 2.4, 3.7} {
			require.InDelta(t, f(x), float64(Evaluate(coeffs, (x-mid)/half)), 1e-8)
		}
	})

	t.Run("SamplesOncePerNodeInOrder", func(t *testing.T) {
		var calls []float64
		f := func(t float64) Float {
			calls = append(calls, t)
			return Float(t)
		}
		FitFunction(f, 11, 3, 8)
		require.Equal(t, NodesMapped(11, 3, 8), calls)
	})
}
