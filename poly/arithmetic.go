package poly

import (
	"fmt"
	"math"
)

// Add returns a + b.
// The terms of a and b are merged by decreasing degree, equal degrees are
// summed and exact zero sums are dropped, so the result is canonical
// without a further pass.
func Add(a, b Polynomial) Polynomial {

	ta, tb := a.terms, b.terms

	terms := make([]Term, 0, len(ta)+len(tb))

	var i, j int
	for i < len(ta) && j < len(tb) {
		switch {
		case ta[i].Degree > tb[j].Degree:
			terms = append(terms, ta[i])
			i++
		case ta[i].Degree < tb[j].Degree:
			terms = append(terms, tb[j])
			j++
		default:
			if c := ta[i].Coeff + tb[j].Coeff; c != 0 {
				terms = append(terms, Term{Coeff: c, Degree: ta[i].Degree})
			}
			i++
			j++
		}
	}

	terms = append(terms, ta[i:]...)
	terms = append(terms, tb[j:]...)

	return Polynomial{terms: terms}
}

// Neg returns -p.
func Neg(p Polynomial) Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coeff: -t.Coeff, Degree: t.Degree}
	}
	return Polynomial{terms: terms}
}

// Sub returns a - b.
func Sub(a, b Polynomial) Polynomial {
	return Add(a, Neg(b))
}

// Scale returns c * p. Scaling by zero returns the zero polynomial.
func Scale(p Polynomial, c float64) Polynomial {
	terms := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		if v := t.Coeff * c; v != 0 {
			terms = append(terms, Term{Coeff: v, Degree: t.Degree})
		}
	}
	return Polynomial{terms: terms}
}

// Mul returns a * b.
// Every pair of terms contributes coeff_a*coeff_b to the degree bucket
// degree_a+degree_b; the buckets are then emitted by decreasing degree
// and the zero ones dropped. If either operand is zero, so is the result.
// It panics if a product degree does not fit in an int.
func Mul(a, b Polynomial) Polynomial {

	if a.IsZero() || b.IsZero() {
		return Polynomial{}
	}

	buckets := make(map[int]float64, len(a.terms)+len(b.terms))

	for _, ta := range a.terms {
		for _, tb := range b.terms {
			if ta.Degree > math.MaxInt-tb.Degree {
				panic(fmt.Errorf("cannot Mul: degree %d + %d overflows int", ta.Degree, tb.Degree))
			}
			buckets[ta.Degree+tb.Degree] += ta.Coeff * tb.Coeff
		}
	}

	return Polynomial{terms: fromBuckets(buckets)}
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return Add(p, q)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return Sub(p, q)
}

// Mul returns p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	return Mul(p, q)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return Neg(p)
}

// Scale returns c * p.
func (p Polynomial) Scale(c float64) Polynomial {
	return Scale(p, c)
}
