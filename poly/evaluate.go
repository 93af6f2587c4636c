package poly

import (
	"math"
	"math/big"

	"github.com/polyarith/polylist/utils/bignum"
)

// Evaluate returns p(x), accumulating coeff * x^degree from the highest
// degree to the lowest. x^0 is 1 for every x, including 0.
func Evaluate(p Polynomial, x float64) (y float64) {
	for _, t := range p.terms {
		y += t.Coeff * math.Pow(x, float64(t.Degree))
	}
	return
}

// Evaluate returns p(x).
func (p Polynomial) Evaluate(x float64) float64 {
	return Evaluate(p, x)
}

// EvaluateBig returns p(x) computed with the precision of x.
// It panics if a coefficient of p is not finite.
func EvaluateBig(p Polynomial, x *big.Float) (y *big.Float) {

	prec := x.Prec()

	y = bignum.NewFloat(0, prec)

	tmp := new(big.Float).SetPrec(prec)

	for _, t := range p.terms {
		tmp.Mul(bignum.NewFloat(t.Coeff, prec), bignum.PowInt(x, t.Degree))
		y.Add(y, tmp)
	}

	return
}
