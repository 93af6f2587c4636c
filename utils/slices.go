package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// GetReverseSortedKeys returns the keys of a map sorted in decreasing order.
func GetReverseSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetSortedKeys(m)
	ReverseSliceInPlace(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// IsStrictlyDecreasing returns true if every element of s is strictly
// smaller than the one preceding it.
func IsStrictlyDecreasing[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] >= s[i-1] {
			return false
		}
	}
	return true
}

// ReverseSlice returns a new slice with the elements of s in reverse order.
func ReverseSlice[V any](s []V) (r []V) {
	r = make([]V, len(s))
	copy(r, s)
	ReverseSliceInPlace(r)
	return
}

// ReverseSliceInPlace reverses the order of the elements of s in place.
func ReverseSliceInPlace[V any](s []V) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
