// Package sponge implements the sponge construction of FIPS 202 section 4:
// an arbitrary-length input is absorbed through a fixed-width permutation
// and an arbitrary amount of output is squeezed back out.
package sponge

import (
	"github.com/deso-protocol/fips202/collections/bitset"
	"github.com/deso-protocol/fips202/keccak"
)

// Pad returns the pad10*1 padding for a messageLen-bit message at the given
// rate: a 1 bit, the minimum number of 0 bits, then a final 1 bit, such that
// messageLen plus the padding length is a positive multiple of rate. The
// padding is always at least 2 bits and at most rate+1 bits.
func Pad(rate int, messageLen int) *bitset.Bitset {
	if rate <= 0 {
		panic("sponge: Pad requires a positive rate")
	}
	zeros := ((-messageLen-2)%rate + rate) % rate
	padding := bitset.NewBitset(zeros + 2)
	padding.Set(0, true)
	padding.Set(padding.Len()-1, true)
	return padding
}

// A Sponge is parameterized by its rate and the permutation it absorbs
// through; the capacity is the permutation width minus the rate. A Sponge
// holds no per-message state and is safe for concurrent use.
type Sponge struct {
	perm *keccak.Permutation
	rate int
}

// NewSponge returns a sponge over the 1600-bit permutation with the given
// rate. The rate must lie strictly between 0 and the permutation width;
// anything else is a programming error, not a runtime condition.
func NewSponge(perm *keccak.Permutation, rate int) *Sponge {
	if rate <= 0 || rate >= keccak.Width {
		panic("sponge: rate must be in (0, 1600)")
	}
	return &Sponge{perm: perm, rate: rate}
}

// Rate returns the sponge's rate in bits.
func (s *Sponge) Rate() int {
	return s.rate
}

// Capacity returns the sponge's capacity in bits.
func (s *Sponge) Capacity() int {
	return keccak.Width - s.rate
}

// Hash absorbs the message and squeezes exactly outputLen bits.
//
// Absorbing pads the message to a multiple of the rate, then XORs each
// rate-bit block (zero-extended by the capacity) into a running 1600-bit
// state and permutes, strictly in block order. Squeezing takes the first
// rate bits of the state as output, permuting again whenever more output
// is still needed, and truncates to outputLen.
//
// The output is deterministic given (message, rate, outputLen), for any
// outputLen >= 0. The message may have any bit length; byte alignment is
// only a requirement of the hash-function entry points layered on top.
func (s *Sponge) Hash(message *bitset.Bitset, outputLen int) *bitset.Bitset {
	if outputLen < 0 {
		panic("sponge: negative output length")
	}

	padded := message.Append(Pad(s.rate, message.Len()))

	state := bitset.NewBitset(keccak.Width)
	for offset := 0; offset < padded.Len(); offset += s.rate {
		block := padded.Slice(offset, offset+s.rate)
		state.Xor(block.Append(bitset.NewBitset(s.Capacity())))
		state = s.perm.Apply(state)
	}

	output := bitset.NewBitset(0)
	for output.Len() < outputLen {
		output = output.Append(state.Slice(0, s.rate))
		if output.Len() < outputLen {
			state = s.perm.Apply(state)
		}
	}
	return output.Slice(0, outputLen)
}
