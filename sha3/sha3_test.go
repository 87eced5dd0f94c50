package sha3

import (
	"encoding/hex"
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	xsha3 "golang.org/x/crypto/sha3"
)

type output struct {
	Sum224 string
	Sum256 string
	Sum384 string
	Sum512 string
}

type testVector struct {
	input    string
	expected output
}

// Published FIPS 202 digests for the empty message and for "abc".
var (
	empty = testVector{
		input: "",
		expected: output{
			Sum224: "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7",
			Sum256: "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
			Sum384: "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004",
			Sum512: "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26",
		},
	}

	abc = testVector{
		input: "616263",
		expected: output{
			Sum224: "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf",
			Sum256: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
			Sum384: "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25",
			Sum512: "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
		},
	}
)

var testVectors = []testVector{empty, abc}

func TestPublishedVectors(t *testing.T) {
	for _, vec := range testVectors {
		digest, err := Sum224(vec.input)
		if err != nil || digest != vec.expected.Sum224 {
			t.Errorf("TestPublishedVectors: Mismatched SHA3-224! Input: %q, Digest: %v, Expected: %v, Err: %v", vec.input, digest, vec.expected.Sum224, err)
		}

		digest, err = Sum256(vec.input)
		if err != nil || digest != vec.expected.Sum256 {
			t.Errorf("TestPublishedVectors: Mismatched SHA3-256! Input: %q, Digest: %v, Expected: %v, Err: %v", vec.input, digest, vec.expected.Sum256, err)
		}

		digest, err = Sum384(vec.input)
		if err != nil || digest != vec.expected.Sum384 {
			t.Errorf("TestPublishedVectors: Mismatched SHA3-384! Input: %q, Digest: %v, Expected: %v, Err: %v", vec.input, digest, vec.expected.Sum384, err)
		}

		digest, err = Sum512(vec.input)
		if err != nil || digest != vec.expected.Sum512 {
			t.Errorf("TestPublishedVectors: Mismatched SHA3-512! Input: %q, Digest: %v, Expected: %v, Err: %v", vec.input, digest, vec.expected.Sum512, err)
		}
	}
}

var sumFuncs = map[string]func(string) (string, error){
	"sha3-224": Sum224,
	"sha3-256": Sum256,
	"sha3-384": Sum384,
	"sha3-512": Sum512,
}

var digestHexLen = map[string]int{
	"sha3-224": 56,
	"sha3-256": 64,
	"sha3-384": 96,
	"sha3-512": 128,
}

func TestDigestLengthAndDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(55))

	for trial := 0; trial < 10; trial++ {
		raw := make([]byte, r.Intn(300))
		r.Read(raw)
		input := hex.EncodeToString(raw)

		for name, sumFunc := range sumFuncs {
			digest, err := sumFunc(input)
			require.NoError(t, err)
			require.Len(t, digest, digestHexLen[name], name)
			require.Equal(t, strings.ToLower(digest), digest, name)

			again, err := sumFunc(input)
			require.NoError(t, err)
			require.Equal(t, digest, again, name)
		}
	}
}

func TestRejectsOddLengthInput(t *testing.T) {
	for name, sumFunc := range sumFuncs {
		for _, input := range []string{"a", "abc", "00000"} {
			digest, err := sumFunc(input)
			require.Emptyf(t, digest, "%s(%q)", name, input)
			require.ErrorIsf(t, err, ErrInvalidInputLength, "%s(%q)", name, input)
		}
	}
}

func TestRejectsNonHexInput(t *testing.T) {
	for name, sumFunc := range sumFuncs {
		digest, err := sumFunc("zz")
		require.Emptyf(t, digest, "%s", name)
		require.Errorf(t, err, "%s", name)
		require.NotErrorIs(t, err, ErrInvalidInputLength)
	}
}

func TestHexInputIsCaseInsensitive(t *testing.T) {
	lower, err := Sum256("deadbeef")
	require.NoError(t, err)
	upper, err := Sum256("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, lower, upper)
}

func TestErrorsUnwrapToSentinel(t *testing.T) {
	_, err := Sum512("f")
	require.Equal(t, ErrInvalidInputLength, errors.Cause(err))
}

// Every byte-aligned message must agree with x/crypto/sha3, which this
// repo's ancestors already lean on in production code.
func TestAgainstXCrypto(t *testing.T) {
	r := rand.New(rand.NewSource(56))

	for length := 0; length <= 160; length++ {
		raw := make([]byte, length)
		r.Read(raw)
		input := hex.EncodeToString(raw)

		digest, err := Sum224(input)
		require.NoError(t, err)
		expected224 := xsha3.Sum224(raw)
		require.Equalf(t, hex.EncodeToString(expected224[:]), digest, "SHA3-224 of %d bytes", length)

		digest, err = Sum256(input)
		require.NoError(t, err)
		expected256 := xsha3.Sum256(raw)
		require.Equalf(t, hex.EncodeToString(expected256[:]), digest, "SHA3-256 of %d bytes", length)

		digest, err = Sum384(input)
		require.NoError(t, err)
		expected384 := xsha3.Sum384(raw)
		require.Equalf(t, hex.EncodeToString(expected384[:]), digest, "SHA3-384 of %d bytes", length)

		digest, err = Sum512(input)
		require.NoError(t, err)
		expected512 := xsha3.Sum512(raw)
		require.Equalf(t, hex.EncodeToString(expected512[:]), digest, "SHA3-512 of %d bytes", length)
	}
}

func TestCrossFunctionDistinctness(t *testing.T) {
	// The four functions use different capacities, so for the same message
	// no digest is a prefix of a longer one.
	input := "616263"
	digests := make(map[string]string)
	for name, sumFunc := range sumFuncs {
		digest, err := sumFunc(input)
		require.NoError(t, err)
		digests[name] = digest
	}

	names := []string{"sha3-224", "sha3-256", "sha3-384", "sha3-512"}
	for ii, shorter := range names {
		for _, longer := range names[ii+1:] {
			require.False(t, strings.HasPrefix(digests[longer], digests[shorter]),
				"%s is a prefix of %s", shorter, longer)
		}
	}
}

func TestAvalanche(t *testing.T) {
	// Flipping a single input bit should change roughly half the digest
	// bits on average. This is a statistical property, so we check the
	// mean over all bit positions of a fixed message against a generous
	// band rather than an exact value.
	const inputBytes = 16

	r := rand.New(rand.NewSource(57))
	raw := make([]byte, inputBytes)
	r.Read(raw)

	baseDigest, err := Sum256(hex.EncodeToString(raw))
	require.NoError(t, err)
	baseBytes, err := hex.DecodeString(baseDigest)
	require.NoError(t, err)

	totalFlipped := 0
	trials := 0
	for byteIndex := 0; byteIndex < inputBytes; byteIndex++ {
		for bitIndex := 0; bitIndex < 8; bitIndex++ {
			flipped := make([]byte, inputBytes)
			copy(flipped, raw)
			flipped[byteIndex] ^= 1 << bitIndex

			digest, err := Sum256(hex.EncodeToString(flipped))
			require.NoError(t, err)
			digestBytes, err := hex.DecodeString(digest)
			require.NoError(t, err)

			for ii := range digestBytes {
				totalFlipped += bits.OnesCount8(digestBytes[ii] ^ baseBytes[ii])
			}
			trials++
		}
	}

	average := float64(totalFlipped) / float64(trials)
	if average < 112 || average > 144 {
		t.Fatalf("TestAvalanche: Non-random diffusion! Average flipped digest bits: %v (expected ~128)", average)
	}
}

func BenchmarkSum256(b *testing.B) {
	inputs := make([]string, 16)
	for ii := range inputs {
		inputs[ii] = fmt.Sprintf("%016x", ii)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Sum256(inputs[i%len(inputs)])
	}
}

func BenchmarkSum512(b *testing.B) {
	input := strings.Repeat("a3", 136)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Sum512(input)
	}
}
