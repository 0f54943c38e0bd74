package chebyshev

import (
	"math"
)

// Nodes returns the n Chebyshev nodes of the first kind on (-1, 1):
//
//	xi[k] = cos(pi * (2k+1) / (2n)),  k = 0, ..., n-1.
//
// The nodes are returned in descending order, from near +1 to near -1.
// This is the order expected by [FitCoefficients].
// Returns an empty slice if n <= 0.
func Nodes(n int) (xi []float64) {

	if n <= 0 {
		return []float64{}
	}

	xi = make([]float64, n)

	nf := float64(n)
	for k := range xi {
		xi[k] = math.Cos(math.Pi * (2*float64(k) + 1) / (2 * nf))
	}

	return
}

// NodesMapped returns the n Chebyshev nodes affinely mapped onto [start, end]:
//
//	t[k] = mid + half * xi[k],  mid = (start+end)/2, half = (end-start)/2.
//
// The ordering is the one of [Nodes]: descending if start < end.
func NodesMapped(n int, start, end float64) (t []float64) {
	return nodesAround(n, 0.5*(start+end), 0.5*(end-start))
}

func nodesAround(n int, mid, half float64) (t []float64) {

	t = Nodes(n)

	for k := range t {
		t[k] = mid + half*t[k]
	}

	return
}
