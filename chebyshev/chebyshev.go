// Package chebyshev implements the approximation of smooth functions by
// Chebyshev expansions and their evaluation.
//
// The package is made of four layers, each built on the previous one:
//   - [Nodes] and [NodesMapped] generate the Chebyshev nodes of the first
//     kind, on (-1, 1) or mapped onto an interval.
//   - [FitCoefficients] and [FitFunction] compute the coefficients of the
//     expansion from samples taken at those nodes.
//   - [Evaluate], [EvaluateDerivative] and [EvaluateBoth] evaluate an
//     expansion and its derivative with the Clenshaw recurrence.
//   - [Segment] binds an expansion to a physical interval and [Table]
//     covers a domain with uniform segments with O(1) lookup.
//
// All algorithms are generic over the [Scalar] contract, so that the same
// code fits and evaluates plain reals ([Float]), dimensioned quantities or
// arbitrary precision values (bignum.Real).
//
// Every type is immutable once constructed and can be read concurrently.
package chebyshev
