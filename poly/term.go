package poly

import (
	"strconv"
	"strings"
)

// Term is a single (coefficient, degree) monomial coeff * x^degree.
type Term struct {
	Coeff  float64
	Degree int
}

// String renders the term as <coeff>x^<degree>, or <coeff> alone for
// degree 0. The coefficient always carries a fractional part (4.0, -2.5).
func (t Term) String() string {
	if t.Degree == 0 {
		return formatCoeff(t.Coeff)
	}
	return formatCoeff(t.Coeff) + "x^" + strconv.Itoa(t.Degree)
}

func formatCoeff(c float64) string {
	s := strconv.FormatFloat(c, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") { // Inf and NaN are left as is
		s += ".0"
	}
	return s
}
