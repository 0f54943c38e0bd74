package bignum

import (
	"math/big"
)

// ChebyshevNodes returns the n Chebyshev nodes of the first kind on (-1, 1)
// with prec bits of precision, in descending order:
//
//	xi[k] = cos(pi * (2k+1) / (2n)),  k = 0, ..., n-1.
//
// Returns an empty slice if n <= 0.
func ChebyshevNodes(n int, prec uint) (nodes []*big.Float) {

	if n <= 0 {
		return []*big.Float{}
	}

	nodes = make([]*big.Float, n)

	PiOverTwoN := Pi(prec)
	PiOverTwoN.Quo(PiOverTwoN, NewFloat(2*n, prec))

	for k := 0; k < n; k++ {
		up := NewFloat(2*k+1, prec)
		up.Mul(up, PiOverTwoN)
		nodes[k] = Cos(up)
	}

	return
}
