// Package poly implements arithmetic over single-variable polynomials stored as
// sparse sequences of (coefficient, degree) terms.
//
// Every Polynomial is kept in canonical form:
//   - degrees are strictly decreasing from the first term to the last,
//   - no two terms share a degree,
//   - no term has a zero coefficient,
//   - the empty sequence is the zero polynomial.
//
// Polynomials are immutable once constructed. Operations never mutate nor
// alias the terms of their operands, so a Polynomial can be shared read-only
// between goroutines.
package poly

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/polyarith/polylist/utils"
	"github.com/polyarith/polylist/utils/structs"
)

var (
	_ structs.CopyNewer[Polynomial] = Polynomial{}
	_ structs.Equatable[Polynomial] = Polynomial{}
	_ structs.BinarySizer           = Polynomial{}
)

// Polynomial is a canonical sequence of terms. The zero value is the zero polynomial.
type Polynomial struct {
	terms []Term
}

// NewPolynomial creates a new Polynomial from terms given in any order.
// Terms sharing a degree are summed and zero sums are dropped.
// It panics if a term has a negative degree.
func NewPolynomial(terms ...Term) Polynomial {
	return Polynomial{terms: canonicalize(terms)}
}

// canonicalize groups terms by degree bucket, sums each bucket and
// returns the non-zero buckets in decreasing degree order.
func canonicalize(terms []Term) []Term {

	buckets := make(map[int]float64, len(terms))

	for _, t := range terms {
		if t.Degree < 0 {
			panic("cannot NewPolynomial: negative degree")
		}
		buckets[t.Degree] += t.Coeff
	}

	return fromBuckets(buckets)
}

func fromBuckets(buckets map[int]float64) (terms []Term) {

	degrees := utils.GetReverseSortedKeys(buckets)

	terms = make([]Term, 0, len(degrees))

	for _, d := range degrees {
		if c := buckets[d]; c != 0 {
			terms = append(terms, Term{Coeff: c, Degree: d})
		}
	}

	return
}

// Len returns the number of terms of the polynomial.
func (p Polynomial) Len() int {
	return len(p.terms)
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Degree returns the degree of the polynomial, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	if p.IsZero() {
		return -1
	}
	return p.terms[0].Degree
}

// Terms returns a copy of the terms of p in decreasing degree order.
func (p Polynomial) Terms() []Term {
	terms := make([]Term, len(p.terms))
	copy(terms, p.terms)
	return terms
}

// Coeff returns the coefficient of the term of the given degree, or 0 if p has no such term.
func (p Polynomial) Coeff(degree int) float64 {
	for _, t := range p.terms {
		switch {
		case t.Degree == degree:
			return t.Coeff
		case t.Degree < degree:
			return 0
		}
	}
	return 0
}

// CopyNew returns a deep copy of p.
func (p Polynomial) CopyNew() *Polynomial {
	return &Polynomial{terms: p.Terms()}
}

// Equal returns true if p and other hold exactly the same terms.
func (p Polynomial) Equal(other *Polynomial) bool {
	return cmp.Equal(p.terms, other.terms, cmpopts.EquateEmpty())
}

// String renders p as its terms joined by " + " in increasing degree
// order, e.g. "3.0 + 2.0x^1 + 4.0x^5". The zero polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	return join(utils.ReverseSlice(p.terms))
}

// StringDescending renders p like String but with the highest degree first.
func (p Polynomial) StringDescending() string {
	if p.IsZero() {
		return "0"
	}
	return join(p.terms)
}

func join(terms []Term) string {
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}
