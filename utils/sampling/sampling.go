// Package sampling implements sampling of integers and floats from a stream of random bytes.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF read from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(fmt.Errorf("cannot RandUint64: %w", err))
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max read from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)>>11) / (1 << 53)
	return min + f*(max-min)
}

// RandIntn returns a random int in [0, n) read from prng.
func RandIntn(prng PRNG, n int) int {
	if n <= 0 {
		panic(fmt.Errorf("cannot RandIntn: n=%d must be positive", n))
	}

	// rejection sampling avoids the modulo bias
	max := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % max)
	for {
		if v := RandUint64(prng); v < limit {
			return int(v % max)
		}
	}
}

// Permutation returns a random permutation of [0, n) read from prng.
func Permutation(prng PRNG, n int) (perm []int) {
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := RandIntn(prng, i+1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return
}
