package poly

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/zeebo/blake3"

	"github.com/polyarith/polylist/utils"
	"github.com/polyarith/polylist/utils/buffer"
	"github.com/polyarith/polylist/utils/structs"
)

func (p Polynomial) split() (degrees structs.Vector[int], coeffs structs.Vector[float64]) {
	degrees = make(structs.Vector[int], len(p.terms))
	coeffs = make(structs.Vector[float64], len(p.terms))
	for i, t := range p.terms {
		degrees[i] = t.Degree
		coeffs[i] = t.Coeff
	}
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (p Polynomial) BinarySize() int {
	return 16 + 16*len(p.terms)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
// The degrees are written first, then the coefficients, each as a
// length-prefixed vector of little-endian 64-bit words.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (p Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		degrees, coeffs := p.split()

		var inc int64
		if inc, err = degrees.WriteTo(w); err != nil {
			return inc, fmt.Errorf("structs.Vector[int].WriteTo: %w", err)
		}

		n += inc

		if inc, err = coeffs.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("structs.Vector[float64].WriteTo: %w", err)
		}

		return n + inc, nil

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded terms must be in canonical form.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var degrees structs.Vector[int]
		var coeffs structs.Vector[float64]

		var inc int64
		if inc, err = degrees.ReadFrom(r); err != nil {
			return inc, fmt.Errorf("structs.Vector[int].ReadFrom: %w", err)
		}

		n += inc

		if inc, err = coeffs.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("structs.Vector[float64].ReadFrom: %w", err)
		}

		n += inc

		if len(degrees) != len(coeffs) {
			return n, fmt.Errorf("cannot ReadFrom: %d degrees but %d coefficients", len(degrees), len(coeffs))
		}

		if !utils.IsStrictlyDecreasing([]int(degrees)) {
			return n, fmt.Errorf("cannot ReadFrom: degrees are not strictly decreasing")
		}

		terms := make([]Term, len(degrees))
		for i := range terms {
			if degrees[i] < 0 {
				return n, fmt.Errorf("cannot ReadFrom: negative degree %d", degrees[i])
			}
			if coeffs[i] == 0 {
				return n, fmt.Errorf("cannot ReadFrom: zero coefficient at degree %d", degrees[i])
			}
			if math.IsInf(coeffs[i], 0) || math.IsNaN(coeffs[i]) {
				return n, fmt.Errorf("cannot ReadFrom: non-finite coefficient %v at degree %d", coeffs[i], degrees[i])
			}
			terms[i] = Term{Coeff: coeffs[i], Degree: degrees[i]}
		}

		p.terms = terms

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Digest returns the BLAKE3 hash of the binary encoding of p.
// Equal polynomials have equal digests.
func (p Polynomial) Digest() (sum [32]byte) {
	hasher := blake3.New()
	if _, err := p.WriteTo(hasher); err != nil {
		// blake3.Hasher.Write never fails
		panic(err)
	}
	copy(sum[:], hasher.Sum(nil))
	return
}
