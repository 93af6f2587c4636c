// Package structs implements a generic vector of 64-bit words and its serialization.
package structs

// CopyNewer is implemented by objects that can return a deep copy of themselves.
type CopyNewer[V any] interface {
	CopyNew() *V
}

// BinarySizer is implemented by objects that know the size of their binary encoding.
type BinarySizer interface {
	BinarySize() int
}

// Equatable is implemented by objects that can be compared for deep equality.
type Equatable[T any] interface {
	Equal(*T) bool
}
