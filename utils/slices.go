package utils

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ConvertSlice returns a new slice with the elements of s converted to V.
func ConvertSlice[U, V constraints.Float](s []U) (r []V) {
	r = make([]V, len(s))
	for i := range s {
		r[i] = V(s[i])
	}
	return
}

// MaxAbsDistance returns max_i |x[i] - y[i]|.
// Panics if x and y do not have the same length.
func MaxAbsDistance[V constraints.Float](x, y []V) (d V) {

	if len(x) != len(y) {
		panic(fmt.Errorf("cannot MaxAbsDistance: len(x)=%d != len(y)=%d", len(x), len(y)))
	}

	for i := range x {
		if di := V(math.Abs(float64(x[i] - y[i]))); di > d {
			d = di
		}
	}

	return
}

// IsStrictlyDecreasing returns true if s[i] > s[i+1] for all i.
func IsStrictlyDecreasing[V constraints.Ordered](s []V) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] > s[i]) {
			return false
		}
	}
	return true
}
