package keccak

import (
	"math/bits"
)

// rhoOffsets[x][y] is the left-rotation amount applied to lane (x, y) by
// rho. The table follows the position recurrence (x, y) <- (y, (2x+3y) mod 5)
// starting from (1, 0), assigning the triangular number (t+1)(t+2)/2 mod 64
// at step t. Lane (0, 0) is never visited and keeps offset 0.
var rhoOffsets = func() [5][5]int {
	var offsets [5][5]int
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		offsets[x][y] = (t + 1) * (t + 2) / 2 % LaneWidth
		x, y = y, (2*x+3*y)%5
	}
	return offsets
}()

// theta XORs into every lane a function D of the five column parities:
// C[x] is the XOR of the lanes sharing x, and D[x] = C[x-1] ^ rot(C[x+1], 1).
// This is the only step that mixes bits across the x axis.
func theta(a StateArray) StateArray {
	var c, d [5]Lane
	for x := 0; x < 5; x++ {
		c[x] = a[x][0] ^ a[x][1] ^ a[x][2] ^ a[x][3] ^ a[x][4]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	var out StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = a[x][y] ^ d[x]
		}
	}
	return out
}

// rho rotates each lane left by its fixed per-coordinate offset.
func rho(a StateArray) StateArray {
	var out StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = bits.RotateLeft64(a[x][y], rhoOffsets[x][y])
		}
	}
	return out
}

// pi permutes lane positions without touching lane contents.
func pi(a StateArray) StateArray {
	var out StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = a[(x+3*y)%5][x]
		}
	}
	return out
}

// chi is the only nonlinear step: each lane is XORed with the complement of
// its x+1 neighbor ANDed with its x+2 neighbor, lane-wise over all 64 bits.
func chi(a StateArray) StateArray {
	var out StateArray
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = a[x][y] ^ (^a[(x+1)%5][y] & a[(x+2)%5][y])
		}
	}
	return out
}

// iotaRound XORs the round constant into lane (0, 0) only.
func iotaRound(a StateArray, roundConstant Lane) StateArray {
	a[0][0] ^= roundConstant
	return a
}
