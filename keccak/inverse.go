package keccak

import (
	"math/bits"

	"github.com/deso-protocol/fips202/collections/bitset"
)

// The permutation is a bijection on 1600-bit strings: every round step has
// an exact inverse. The inverses below undo ApplyState by running the
// inverted steps in reverse order. They exist to verify the permutation's
// structure (and are exercised heavily by the tests); the hash functions
// never call them.

// Invert undoes Apply for the same round-constant table.
func (p *Permutation) Invert(input *bitset.Bitset) *bitset.Bitset {
	return p.InvertState(ToState(input)).Bits()
}

// InvertState undoes ApplyState.
func (p *Permutation) InvertState(state StateArray) StateArray {
	for ir := NumRounds - 1; ir >= 0; ir-- {
		// iota is an XOR into lane (0, 0), so it is its own inverse.
		state = invTheta(invRho(invPi(invChi(iotaRound(state, p.roundConstants[ir])))))
	}
	return state
}

// chi acts independently on each 5-bit row (fixed y and z), and the row map
// is a permutation of the 32 possible row values. Its inverse is a lookup
// built by inverting that permutation.
var invChiRows = func() [32]uint8 {
	var inv [32]uint8
	for v := 0; v < 32; v++ {
		row := 0
		for x := 0; x < 5; x++ {
			bit := v >> x & 1
			bit ^= (^v >> ((x + 1) % 5) & 1) & (v >> ((x + 2) % 5) & 1)
			row |= bit << x
		}
		inv[row] = uint8(v)
	}
	return inv
}()

func invChi(a StateArray) StateArray {
	var out StateArray
	for y := 0; y < 5; y++ {
		for z := 0; z < LaneWidth; z++ {
			row := 0
			for x := 0; x < 5; x++ {
				row |= int(a[x][y]>>z&1) << x
			}
			original := invChiRows[row]
			for x := 0; x < 5; x++ {
				if original>>x&1 == 1 {
					out[x][y] |= 1 << z
				}
			}
		}
	}
	return out
}

// pi moves the lane at ((x+3y) mod 5, x) to (x, y); invPi moves it back.
func invPi(a StateArray) StateArray {
	var out StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[(x+3*y)%5][x] = a[x][y]
		}
	}
	return out
}

func invRho(a StateArray) StateArray {
	var out StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = bits.RotateLeft64(a[x][y], -rhoOffsets[x][y])
		}
	}
	return out
}

// theta XORs D[x] into all five lanes of column x, which also flips the
// column parities themselves by D. The output parities are therefore
// E(C)[x] = C[x] ^ C[x-1] ^ rot(C[x+1], 1), a linear map E on the 320
// parity bits. E is invertible; invTheta recovers the input parities as
// C = E^-1(parities of output), rebuilds D from C, and strips it off.
func invTheta(b StateArray) StateArray {
	var outputParity [5]Lane
	for x := 0; x < 5; x++ {
		outputParity[x] = b[x][0] ^ b[x][1] ^ b[x][2] ^ b[x][3] ^ b[x][4]
	}

	var c [5]Lane
	for ii := 0; ii < 320; ii++ {
		parity := 0
		for word := 0; word < 5; word++ {
			parity ^= bits.OnesCount64(invParityEffect[ii][word] & outputParity[word])
		}
		if parity&1 == 1 {
			c[ii/LaneWidth] |= 1 << (ii % LaneWidth)
		}
	}

	var d [5]Lane
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}

	var out StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = b[x][y] ^ d[x]
		}
	}
	return out
}

// parityEffect is E, theta's effect on the five column-parity lanes.
func parityEffect(c [5]Lane) [5]Lane {
	var e [5]Lane
	for x := 0; x < 5; x++ {
		e[x] = c[x] ^ c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	return e
}

// invParityEffect is E^-1 as a 320x320 GF(2) matrix, one [5]Lane row per
// output bit: bit i of E^-1(v) is the parity of row i ANDed with v. It is
// computed once by Gauss-Jordan elimination over GF(2).
var invParityEffect = func() [320][5]Lane {
	// forward[i] holds row i of E's matrix: bit j is component i of E(e_j).
	var forward [320][5]Lane
	for j := 0; j < 320; j++ {
		var basis [5]Lane
		basis[j/LaneWidth] = 1 << (j % LaneWidth)
		image := parityEffect(basis)
		for ii := 0; ii < 320; ii++ {
			if image[ii/LaneWidth]>>(ii%LaneWidth)&1 == 1 {
				forward[ii][j/LaneWidth] |= 1 << (j % LaneWidth)
			}
		}
	}

	// Augment with the identity and reduce forward to the identity; the
	// augmented half then holds E^-1.
	var inverse [320][5]Lane
	for ii := 0; ii < 320; ii++ {
		inverse[ii][ii/LaneWidth] = 1 << (ii % LaneWidth)
	}
	for col := 0; col < 320; col++ {
		pivot := -1
		for r := col; r < 320; r++ {
			if forward[r][col/LaneWidth]>>(col%LaneWidth)&1 == 1 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			// theta's parity effect is known to be invertible; a missing
			// pivot means the matrix construction above is broken.
			panic("keccak: theta parity-effect matrix is singular")
		}
		forward[col], forward[pivot] = forward[pivot], forward[col]
		inverse[col], inverse[pivot] = inverse[pivot], inverse[col]
		for r := 0; r < 320; r++ {
			if r != col && forward[r][col/LaneWidth]>>(col%LaneWidth)&1 == 1 {
				for word := 0; word < 5; word++ {
					forward[r][word] ^= forward[col][word]
					inverse[r][word] ^= inverse[col][word]
				}
			}
		}
	}
	return inverse
}()
