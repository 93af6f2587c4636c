package buffer

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// ReadAsUint64 reads an uint64 from r and stores the result into c as T.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint64Slice reads a slice of uint64 from r and stores the result into c as []T.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadUint64 reads an uint64 from r and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	slice, err := r.Peek(8)
	if err != nil {
		return int64(len(slice)), err
	}

	*c = binary.LittleEndian.Uint64(slice)

	nint, err := r.Discard(8)

	return int64(nint), err
}

// ReadUint64Slice reads a slice of uint64 from r and stores the result into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if buffered == 0 {
		return 0, fmt.Errorf("cannot ReadUint64Slice: fewer than 8 bytes available")
	}

	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = binary.LittleEndian.Uint64(slice[j:])
		}

		nint, err := r.Discard(N << 3)

		return int64(nint), err
	}

	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = binary.LittleEndian.Uint64(slice[j:])
	}

	var inc int
	if inc, err = r.Discard(buffered << 3); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	var inc64 int64
	inc64, err = ReadUint64Slice(r, c[buffered:])

	return n + inc64, err
}

// EqualAsUint64Slice casts &[]T into *[]uint64 and performs a word-wise comparison.
// User must ensure that T can be stored in an uint64.
func EqualAsUint64Slice[T any](a, b []T) bool {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	aU64 := *(*[]uint64)(unsafe.Pointer(&a))
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	bU64 := *(*[]uint64)(unsafe.Pointer(&b))

	if len(aU64) != len(bU64) {
		return false
	}

	for i := range aU64 {
		if aU64[i] != bU64[i] {
			return false
		}
	}

	return true
}
