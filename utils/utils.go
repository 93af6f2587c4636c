// Package utils implements generic helpers shared by the polynomial packages.
package utils

// MinInt returns the minimum value of the input of int values.
func MinInt(a, b int) (r int) {
	if a <= b {
		return a
	}
	return b
}
