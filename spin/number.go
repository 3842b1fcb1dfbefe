// Package spin: the half-integer spin quantum number.

package spin

import (
	"math"
	"math/bits"
)

// Number is a spin quantum number S: a positive half-integer (1/2, 1, 3/2, …).
// The physical state space of one spin-S mode has dimension 2S+1.
type Number float64

// Validate reports whether the number is a positive half-integer.
// 2S must be a positive integer and exactly representable, so values like
// 0.3 or −0.5 (and S = 0, which would need an empty qubit register) are
// rejected with ErrInvalidNumber. Complexity: O(1).
func (s Number) Validate() error {
	doubled := 2 * float64(s)
	if doubled < 1 || doubled != math.Trunc(doubled) || math.IsInf(doubled, 0) {
		return ErrInvalidNumber
	}

	return nil
}

// Dim returns the physical state-space dimension d = 2S+1.
// Callers must Validate first; Dim on an invalid number is meaningless.
// Complexity: O(1).
func (s Number) Dim() int {
	return int(2*float64(s)) + 1
}

// Qubits returns the minimal qubit-register size able to host the physical
// state space: the smallest n with 2^n ≥ 2S+1, i.e. ceil(log2(d)).
// Complexity: O(1).
func (s Number) Qubits() int {
	return bits.Len(uint(s.Dim() - 1))
}
