// Package sha3 implements the four fixed-output-length SHA-3 hash functions
// of FIPS 202 on top of the keccak permutation and the sponge construction.
// Messages and digests are hex-encoded strings; the whole message is
// available before processing begins (no streaming).
package sha3

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/deso-protocol/fips202/collections/bitset"
	"github.com/deso-protocol/fips202/keccak"
	"github.com/deso-protocol/fips202/sponge"
)

// ErrInvalidInputLength is returned when the hex-encoded message has odd
// length and therefore cannot describe a whole number of bytes. It is the
// only recoverable error this package produces; it is detected before any
// bit-level work begins.
var ErrInvalidInputLength = errors.New("expected an even-length hexadecimal string")

// params fix one of the four hash functions: the capacity is twice the
// digest length in bits, and the rate is the permutation width minus the
// capacity.
type params struct {
	capacity  int
	digestLen int
}

func (p params) rate() int {
	return keccak.Width - p.capacity
}

var (
	params224 = params{capacity: 448, digestLen: 224}
	params256 = params{capacity: 512, digestLen: 256}
	params384 = params{capacity: 768, digestLen: 384}
	params512 = params{capacity: 1024, digestLen: 512}
)

// The permutation is pure and immutable, so a single instance built at
// process start is shared by every call on every goroutine.
var perm = keccak.NewPermutation()

// Sum224 returns the SHA3-224 digest of the hex-encoded message as a
// 56-character lowercase hex string.
func Sum224(hexInput string) (string, error) {
	return sum(hexInput, params224)
}

// Sum256 returns the SHA3-256 digest of the hex-encoded message as a
// 64-character lowercase hex string.
func Sum256(hexInput string) (string, error) {
	return sum(hexInput, params256)
}

// Sum384 returns the SHA3-384 digest of the hex-encoded message as a
// 96-character lowercase hex string.
func Sum384(hexInput string) (string, error) {
	return sum(hexInput, params384)
}

// Sum512 returns the SHA3-512 digest of the hex-encoded message as a
// 128-character lowercase hex string.
func Sum512(hexInput string) (string, error) {
	return sum(hexInput, params512)
}

func sum(hexInput string, p params) (string, error) {
	message, err := decodeHex(hexInput)
	if err != nil {
		return "", err
	}

	// Hash-mode domain separation: the 01 suffix distinguishes the
	// fixed-output functions from the XOFs (FIPS 202 section 6.1), which
	// this package does not implement.
	message = message.Append(domainSuffix())

	digest := sponge.NewSponge(perm, p.rate()).Hash(message, p.digestLen)
	return encodeHex(digest), nil
}

// domainSuffix is the two-bit string 01, in string order: a 0 bit followed
// by a 1 bit.
func domainSuffix() *bitset.Bitset {
	return bitset.NewBitset(2).Set(1, true)
}

// decodeHex converts a hex-encoded message to its bit string. Hex digits
// are case-insensitive and read most-significant-nibble-first; within each
// decoded byte the low-order bit comes first in the string, per the
// conversion of FIPS 202 appendix B.1.
func decodeHex(input string) (*bitset.Bitset, error) {
	if len(input)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInputLength, "decodeHex: got %d hex characters", len(input))
	}
	raw, err := hex.DecodeString(input)
	if err != nil {
		return nil, errors.Wrap(err, "decodeHex: invalid hexadecimal input")
	}

	message := bitset.NewBitset(len(raw) * 8)
	for ii, octet := range raw {
		for j := 0; j < 8; j++ {
			if octet>>j&1 == 1 {
				message.Set(ii*8+j, true)
			}
		}
	}
	return message, nil
}

// encodeHex is the inverse of decodeHex for byte-aligned bit strings. All
// four digest lengths are multiples of 8 bits.
func encodeHex(digest *bitset.Bitset) string {
	raw := make([]byte, digest.Len()/8)
	for ii := range raw {
		for j := 0; j < 8; j++ {
			if digest.Get(ii*8 + j) {
				raw[ii] |= 1 << j
			}
		}
	}
	return hex.EncodeToString(raw)
}
