package keccak

import (
	"github.com/deso-protocol/fips202/collections/bitset"
)

const (
	// Width is the permutation width b in bits. Only the b=1600 instance
	// used by the SHA-3 functions is supported.
	Width = 1600

	// LaneWidth is the number of bits per lane, w = b/25.
	LaneWidth = 64

	// NumRounds is the round count of KECCAK-p[1600, 24].
	NumRounds = 24
)

// A Lane is one w-bit word of the state. Bit z of the lane is position z of
// the lane's bit string, so bit 0 is the least significant bit.
type Lane = uint64

// A StateArray is the 5x5 grid of lanes that the permutation operates on.
// The lane at coordinate (x, y) is state[x][y] and covers bits
// 64*(5y+x) .. 64*(5y+x)+63 of the flat 1600-bit string: the string is
// partitioned sequentially into 25 chunks which fill the grid column-major,
// x varying fastest.
//
// StateArray is a value type. The step functions take a state by value and
// return a new one, so a round never reads a lane it has already written.
type StateArray [5][5]Lane

// ToState partitions a 1600-bit string into a state array. The input length
// is a construction-time guarantee of every caller, so a mismatch panics
// rather than returning an error.
func ToState(bits *bitset.Bitset) StateArray {
	if bits.Len() != Width {
		panic("keccak: ToState requires exactly 1600 bits")
	}
	var state StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			offset := LaneWidth * (5*y + x)
			var lane Lane
			for z := 0; z < LaneWidth; z++ {
				if bits.Get(offset + z) {
					lane |= 1 << z
				}
			}
			state[x][y] = lane
		}
	}
	return state
}

// Bits flattens the state array back into a 1600-bit string. It is the
// exact inverse of ToState.
func (s StateArray) Bits() *bitset.Bitset {
	bits := bitset.NewBitset(Width)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			offset := LaneWidth * (5*y + x)
			for z := 0; z < LaneWidth; z++ {
				if s[x][y]>>z&1 == 1 {
					bits.Set(offset+z, true)
				}
			}
		}
	}
	return bits
}
