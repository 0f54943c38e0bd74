package chebyshev

import (
	"math"
)

// FitCoefficients computes the Chebyshev coefficients of the values
// sampled at the canonical nodes, with the direct O(N^2) cosine sum:
//
//	c[0] = 1/N * sum_k values[k]
//	c[j] = 2/N * sum_k values[k] * cos(j * pi * (2k+1) / (2N)),  j = 1, ..., N-1
//
// values[k] must be the function evaluated at Nodes(N)[k]. This is not
// checked: samples supplied in any other order silently produce wrong
// coefficients.
//
// Returns an empty slice if values is empty.
func FitCoefficients[T Scalar[T]](values []T) (coeffs []T) {

	n := len(values)

	coeffs = make([]T, n)

	if n == 0 {
		return
	}

	nf := float64(n)

	for j := 0; j < n; j++ {

		var sum T
		for k := 0; k < n; k++ {
			sum = sum.Add(values[k].Mul(math.Cos(math.Pi * float64(j) * (2*float64(k) + 1) / (2 * nf))))
		}

		if j == 0 {
			coeffs[j] = sum.Div(nf)
		} else {
			coeffs[j] = sum.Mul(2 / nf)
		}
	}

	return
}

// FitFunction samples f at the n Chebyshev nodes mapped onto [start, end]
// and returns the fitted coefficients. f is called exactly once per node,
// in node order.
//
// The returned coefficients are expressed in the normalized argument
// tau = (t - mid) / half of the interval [start, end].
func FitFunction[T Scalar[T]](f func(t float64) T, n int, start, end float64) (coeffs []T) {
	return fitAround(f, n, 0.5*(start+end), 0.5*(end-start))
}

// fitAround is [FitFunction] on the interval [mid - half, mid + half].
func fitAround[T Scalar[T]](f func(t float64) T, n int, mid, half float64) (coeffs []T) {

	nodes := nodesAround(n, mid, half)

	values := make([]T, len(nodes))
	for k := range nodes {
		values[k] = f(nodes[k])
	}

	return FitCoefficients(values)
}
