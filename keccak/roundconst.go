package keccak

// rc returns bit t of the round-constant bit stream, produced by the 8-bit
// linear-feedback shift register of FIPS 202 Algorithm 5 (feedback
// polynomial x^8 + x^6 + x^5 + x^4 + 1). The stream has period 255.
func rc(t int) bool {
	if t%255 == 0 {
		return true
	}
	// Register bit i is bit i of r; bit 8 is the bit shifted out and fed
	// back into positions 0, 4, 5 and 6.
	r := uint16(1)
	for ii := 1; ii <= t%255; ii++ {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return r&1 == 1
}

// DeriveRoundConstants produces the 24 round constants of
// KECCAK-p[1600, 24]. Round ir gets a lane with bit 2^j - 1 set to
// rc(j + 7*ir) for j = 0..6 (l = 6 for 64-bit lanes) and all other bits
// zero. The table depends on nothing but the LFSR, so deriving it is
// reproducible; a test pins it against the published constants.
func DeriveRoundConstants() [NumRounds]Lane {
	var table [NumRounds]Lane
	for ir := 0; ir < NumRounds; ir++ {
		var lane Lane
		for j := 0; j <= 6; j++ {
			if rc(j + 7*ir) {
				lane |= 1 << ((1 << j) - 1)
			}
		}
		table[ir] = lane
	}
	return table
}
