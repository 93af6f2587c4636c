package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Log2", 1.4142135623730951, math.Log2, Log2, 1e-15, t)
	testFunc1("Log2/Large", 1e300, math.Log2, Log2, 1e-10, t)

	t.Run("PowInt", func(t *testing.T) {
		for _, x := range []float64{0, 1, -1, 2, -2, 0.5, 1.4142135623730951} {
			for _, n := range []int{0, 1, 2, 3, 7, 10} {
				y, _ := PowInt(NewFloat(x, 128), n).Float64()
				require.InDelta(t, math.Pow(x, float64(n)), y, 1e-12, "x=%v n=%d", x, n)
			}
		}
	})

	t.Run("PowInt/ZeroToZero", func(t *testing.T) {
		y, _ := PowInt(NewFloat(0, 64), 0).Float64()
		require.Equal(t, 1.0, y)
	})

	t.Run("PowInt/Negative", func(t *testing.T) {
		require.Panics(t, func() { PowInt(NewFloat(2, 64), -1) })
	})

	t.Run("NewFloat", func(t *testing.T) {
		require.Equal(t, uint(96), NewFloat(3, 96).Prec())
		require.Equal(t, 0, NewFloat(big.NewInt(7), 64).Cmp(big.NewFloat(7)))
		require.Equal(t, 0, NewFloat(nil, 64).Sign())
		require.Panics(t, func() { NewFloat("7", 64) })
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}
