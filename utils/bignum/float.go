// Package bignum implements arbitrary precision helpers over math/big used as
// reference arithmetic for float64 computations.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Log returns ln(x) at the precision of x. x must be strictly positive.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Log2 returns log2(x) at the precision of x. x must be strictly positive.
func Log2(x *big.Float) (log2 *big.Float) {
	log2 = Log(x)
	return log2.Quo(log2, Log(NewFloat(2, x.Prec())))
}

// PowInt returns x^n for a non-negative integer n by repeated squaring, at the
// precision of x. 0^0 is 1.
func PowInt(x *big.Float, n int) (pow *big.Float) {

	if n < 0 {
		panic(fmt.Errorf("cannot PowInt: negative exponent %d", n))
	}

	pow = NewFloat(1, x.Prec())
	base := new(big.Float).Copy(x)

	for n > 0 {
		if n&1 == 1 {
			pow.Mul(pow, base)
		}
		base.Mul(base, base)
		n >>= 1
	}

	return
}
