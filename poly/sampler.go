package poly

import (
	"fmt"

	"github.com/polyarith/polylist/utils"
	"github.com/polyarith/polylist/utils/sampling"
)

// NewRandomPolynomial samples a polynomial with up to n terms of distinct
// degrees in [0, maxDegree] and coefficients uniform in [-bound, bound).
// The output is deterministic for a given sampling.KeyedPRNG state.
func NewRandomPolynomial(prng sampling.PRNG, maxDegree, n int, bound float64) Polynomial {

	if maxDegree < 0 {
		panic(fmt.Errorf("cannot NewRandomPolynomial: maxDegree=%d is negative", maxDegree))
	}

	n = utils.MinInt(n, maxDegree+1)

	if n <= 0 {
		return Polynomial{}
	}

	degrees := sampling.Permutation(prng, maxDegree+1)[:n]

	terms := make([]Term, n)
	for i, d := range degrees {
		terms[i] = Term{Coeff: sampling.RandFloat64(prng, -bound, bound), Degree: d}
	}

	return NewPolynomial(terms...)
}
