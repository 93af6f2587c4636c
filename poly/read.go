package poly

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedTerm is matched by errors.Is for every *MalformedTermError.
var ErrMalformedTerm = errors.New("malformed term")

// MalformedTermError reports a line of the text encoding that does not hold
// exactly one finite coefficient followed by one non-negative integer degree.
type MalformedTermError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *MalformedTermError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, ErrMalformedTerm, e.Text, e.Err)
}

func (e *MalformedTermError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedTerm.
func (e *MalformedTermError) Is(target error) bool {
	return target == ErrMalformedTerm
}

// Read reads a polynomial from r, one "<coeff> <degree>" term per line.
// Blank lines are ignored and zero coefficients are dropped. The first
// malformed line aborts the read with a *MalformedTermError and no
// polynomial is returned.
func Read(r io.Reader) (p Polynomial, err error) {

	scanner := bufio.NewScanner(r)

	var terms []Term
	var line int
	for scanner.Scan() {
		line++

		var t Term
		var ok bool
		if t, ok, err = parseLine(line, scanner.Text()); err != nil {
			return Polynomial{}, err
		}

		if ok {
			terms = append(terms, t)
		}
	}

	if err = scanner.Err(); err != nil {
		return Polynomial{}, fmt.Errorf("cannot Read: %w", err)
	}

	return NewPolynomial(terms...), nil
}

// ReadLines is like Read over a slice of lines.
func ReadLines(lines []string) (p Polynomial, err error) {

	terms := make([]Term, 0, len(lines))

	for i, text := range lines {

		var t Term
		var ok bool
		if t, ok, err = parseLine(i+1, text); err != nil {
			return Polynomial{}, err
		}

		if ok {
			terms = append(terms, t)
		}
	}

	return NewPolynomial(terms...), nil
}

// Parse is like Read over the content of s.
func Parse(s string) (p Polynomial, err error) {
	return Read(strings.NewReader(s))
}

// parseLine returns ok=false for blank lines.
func parseLine(line int, text string) (t Term, ok bool, err error) {

	fields := strings.Fields(text)

	if len(fields) == 0 {
		return t, false, nil
	}

	malformed := func(err error) (Term, bool, error) {
		return Term{}, false, &MalformedTermError{Line: line, Text: text, Err: err}
	}

	if len(fields) != 2 {
		return malformed(fmt.Errorf("expected 2 tokens but got %d", len(fields)))
	}

	if t.Coeff, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return malformed(err)
	}

	if math.IsInf(t.Coeff, 0) || math.IsNaN(t.Coeff) {
		return malformed(fmt.Errorf("coefficient %s is not finite", fields[0]))
	}

	if t.Degree, err = strconv.Atoi(fields[1]); err != nil {
		return malformed(err)
	}

	if t.Degree < 0 {
		return malformed(fmt.Errorf("degree %d is negative", t.Degree))
	}

	return t, true, nil
}
