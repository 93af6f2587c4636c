package poly

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyarith/polylist/utils/buffer"
	"github.com/polyarith/polylist/utils/structs"
)

func TestMarshaler(t *testing.T) {

	tc := newTestContext(t)

	t.Run(testString("MarshalBinary", tc.a), func(t *testing.T) {
		data, err := tc.a.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, tc.a.BinarySize())

		pNew := Polynomial{}
		require.NoError(t, pNew.UnmarshalBinary(data))
		require.True(t, tc.a.Equal(&pNew))
	})

	t.Run("MarshalBinary/Zero", func(t *testing.T) {
		data, err := Polynomial{}.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, 16)

		pNew := tc.a
		require.NoError(t, pNew.UnmarshalBinary(data))
		require.True(t, pNew.IsZero())
	})

	t.Run("WriteToReadFrom/io", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			p := tc.randomPolynomial()

			var w bytes.Buffer
			n, err := p.WriteTo(&w)
			require.NoError(t, err)
			require.Equal(t, int64(p.BinarySize()), n)

			pNew := Polynomial{}
			n, err = pNew.ReadFrom(bytes.NewReader(w.Bytes()))
			require.NoError(t, err)
			require.Equal(t, int64(p.BinarySize()), n)
			require.True(t, p.Equal(&pNew))
		}
	})

	t.Run("UnmarshalBinary/Truncated", func(t *testing.T) {
		data, err := tc.a.MarshalBinary()
		require.NoError(t, err)
		pNew := Polynomial{}
		require.Error(t, pNew.UnmarshalBinary(data[:len(data)-8]))
		require.Error(t, pNew.UnmarshalBinary(data[:3]))
		require.Error(t, pNew.UnmarshalBinary(nil))
	})

	t.Run("UnmarshalBinary/NotCanonical", func(t *testing.T) {
		for name, c := range map[string]struct {
			degrees structs.Vector[int]
			coeffs  structs.Vector[float64]
		}{
			"LengthMismatch": {structs.Vector[int]{3, 1}, structs.Vector[float64]{1}},
			"Increasing":     {structs.Vector[int]{1, 3}, structs.Vector[float64]{1, 1}},
			"Duplicate":      {structs.Vector[int]{3, 3}, structs.Vector[float64]{1, 1}},
			"NegativeDegree": {structs.Vector[int]{2, -1}, structs.Vector[float64]{1, 1}},
			"ZeroCoeff":      {structs.Vector[int]{2, 1}, structs.Vector[float64]{1, 0}},
			"NaNCoeff":       {structs.Vector[int]{2, 1}, structs.Vector[float64]{1, math.NaN()}},
			"InfCoeff":       {structs.Vector[int]{2, 1}, structs.Vector[float64]{math.Inf(-1), 1}},
		} {
			buf := buffer.NewBufferSize(c.degrees.BinarySize() + c.coeffs.BinarySize())
			_, err := c.degrees.WriteTo(buf)
			require.NoError(t, err)
			_, err = c.coeffs.WriteTo(buf)
			require.NoError(t, err)

			pNew := Polynomial{}
			require.Error(t, pNew.UnmarshalBinary(buf.Bytes()), name)
			require.True(t, pNew.IsZero(), name)
		}
	})

	t.Run("ReadFrom/io/CorruptSize", func(t *testing.T) {
		for _, size := range []uint64{1 << 60, 1 << 40, 1<<63 - 1, 1 << 63} {
			header := make([]byte, 8)
			binary.LittleEndian.PutUint64(header, size)

			pNew := Polynomial{}
			_, err := pNew.ReadFrom(bytes.NewReader(header))
			require.Error(t, err)
			require.True(t, pNew.IsZero())
		}

		data, err := tc.a.MarshalBinary()
		require.NoError(t, err)
		binary.LittleEndian.PutUint64(data, 1<<60)
		pNew := Polynomial{}
		_, err = pNew.ReadFrom(bytes.NewReader(data))
		require.Error(t, err)
	})

	t.Run(testString("Digest", tc.a), func(t *testing.T) {
		require.Equal(t, tc.a.Digest(), tc.a.CopyNew().Digest())
		require.NotEqual(t, tc.a.Digest(), tc.b.Digest())

		sum := Add(tc.a, tc.b)
		rebuilt := NewPolynomial(Term{2, 1}, Term{4, 5})
		require.Equal(t, sum.Digest(), rebuilt.Digest())
		require.Equal(t, Polynomial{}.Digest(), Sub(tc.a, tc.a).Digest())
	})
}
