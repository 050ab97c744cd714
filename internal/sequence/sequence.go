// Package sequence produces unpredictable orderings of a topic's question pool.
package sequence

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Generate returns a random permutation of {1..n} using a Fisher-Yates
// shuffle driven by crypto/rand. Each call is independent; n <= 0 is
// rejected as invalid input.
func Generate(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sequence length must be positive, got %d", n)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i + 1
	}

	for i := n - 1; i >= 1; i-- {
		j, err := uniformInt(i + 1)
		if err != nil {
			return nil, fmt.Errorf("draw shuffle index: %w", err)
		}
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm, nil
}

// uniformInt draws a uniform integer in [0, bound) from crypto/rand.
// Rejection sampling keeps the draw unbiased for any bound.
func uniformInt(bound int) (int, error) {
	max := uint64(bound)
	// Largest multiple of bound that fits in a uint64.
	limit := (^uint64(0) / max) * max

	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return int(v % max), nil
		}
	}
}

// IsPermutation reports whether perm is a bijection onto {1..n}.
// Used to validate persisted sequences before trusting them.
func IsPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n+1)
	for _, v := range perm {
		if v < 1 || v > n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
