/*
Package cheby is a pure Go library for the approximation of smooth functions by
piecewise Chebyshev expansions. A function sampled once at a small number of
Chebyshev nodes per segment can then be evaluated, together with its derivative,
at O(1) lookup cost and O(N) evaluation cost.

The numerical engine lives in the chebyshev package. The utils/bignum package
provides an arbitrary precision scalar usable with it, and utils/sampling a
deterministic PRNG.
*/
package cheby
