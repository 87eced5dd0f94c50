package keccak

import (
	"github.com/deso-protocol/fips202/collections/bitset"
)

// A Permutation is KECCAK-p[1600, 24] with an explicit round-constant
// table. The table is carried by the value rather than referenced as
// package state, so tests can run the permutation under alternate
// constants. A Permutation is immutable after construction and safe for
// concurrent use.
type Permutation struct {
	roundConstants [NumRounds]Lane
}

// NewPermutation returns the standard permutation, with the LFSR-derived
// round constants.
func NewPermutation() *Permutation {
	return &Permutation{roundConstants: DeriveRoundConstants()}
}

// Apply runs the full permutation on a 1600-bit string: the input is
// packed into a state array, put through the 24 rounds, and flattened back
// out. The input bitset is not modified.
func (p *Permutation) Apply(input *bitset.Bitset) *bitset.Bitset {
	return p.ApplyState(ToState(input)).Bits()
}

// ApplyState runs the 24 rounds directly on a state array, for callers that
// already hold one. Each round applies theta, rho, pi, chi and iota in that
// order; there is no branching and no early exit.
func (p *Permutation) ApplyState(state StateArray) StateArray {
	for ir := 0; ir < NumRounds; ir++ {
		state = iotaRound(chi(pi(rho(theta(state)))), p.roundConstants[ir])
	}
	return state
}
