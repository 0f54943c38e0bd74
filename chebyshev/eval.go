package chebyshev

// Evaluate evaluates y = sum_k coeffs[k] * T_k(tau) with the Clenshaw
// recurrence:
//
//	b[n] = b[n+1] = 0
//	b[k] = 2*tau*b[k+1] - b[k+2] + coeffs[k],  k = n-1, ..., 1
//	y    = coeffs[0] + tau*b[1] - b[2]
//
// tau is the normalized argument; values outside [-1, 1] are extrapolated.
// Returns the zero value of T if coeffs is empty.
func Evaluate[T Scalar[T]](coeffs []T, tau float64) (y T) {

	n := len(coeffs)

	if n == 0 {
		return
	}

	if n == 1 {
		return coeffs[0]
	}

	twoTau := 2 * tau

	// b1 = b[k+1], b2 = b[k+2]
	var b1, b2 T
	for k := n - 1; k > 0; k-- {
		b1, b2 = b1.Mul(twoTau).Sub(b2).Add(coeffs[k]), b1
	}

	return coeffs[0].Add(b1.Mul(tau)).Sub(b2)
}

// EvaluateDerivative evaluates dy/dtau, the derivative of the Chebyshev
// series with respect to the normalized argument. The b-sequence of
// [Evaluate] is differentiated alongside the value recurrence:
//
//	db[k] = 2*tau*db[k+1] - db[k+2] + 2*b[k+1]
//	dy    = b[1] + tau*db[1] - db[2]
//
// To obtain the derivative with respect to the physical argument t,
// divide by the half-width of the interval (see [Segment.EvaluateDerivative]).
// Returns the zero value of T if len(coeffs) <= 1.
func EvaluateDerivative[T Scalar[T]](coeffs []T, tau float64) (dy T) {
	_, dy = EvaluateBoth(coeffs, tau)
	return
}

// EvaluateBoth evaluates the Chebyshev series and its derivative with
// respect to tau in a single pass sharing the b-sequence.
// The results are identical to those of [Evaluate] and [EvaluateDerivative].
func EvaluateBoth[T Scalar[T]](coeffs []T, tau float64) (y, dy T) {

	n := len(coeffs)

	if n == 0 {
		return
	}

	if n == 1 {
		return coeffs[0], dy
	}

	twoTau := 2 * tau

	var b1, b2, db1, db2 T
	for k := n - 1; k > 0; k-- {
		db1, db2 = db1.Mul(twoTau).Sub(db2).Add(b1.Mul(2)), db1
		b1, b2 = b1.Mul(twoTau).Sub(b2).Add(coeffs[k]), b1
	}

	y = coeffs[0].Add(b1.Mul(tau)).Sub(b2)
	dy = b1.Add(db1.Mul(tau)).Sub(db2)

	return
}
