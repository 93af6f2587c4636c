/*
Package polylist is a small library for elementary arithmetic over single-variable polynomials.
Polynomials are held as sparse sequences of (coefficient, degree) terms in strictly descending
degree order, and can be read from a line-oriented text encoding, added, multiplied, evaluated at
a point and rendered to a string. See the poly package for the API.
*/
package polylist
