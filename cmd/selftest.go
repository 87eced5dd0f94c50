package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deso-protocol/fips202/sha3"
)

var (
	Green = color.New(color.FgHiGreen)
	Red   = color.New(color.FgRed)
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the implementation against published FIPS 202 digests",
	Long: `Recomputes the published digests of the empty message and of "abc"
for all four hash functions and reports PASS or FAIL per vector. Exits
nonzero if any vector mismatches.`,
	Run: RunSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

type selftestVector struct {
	name     string
	sum      func(string) (string, error)
	input    string
	expected string
}

var selftestVectors = []selftestVector{
	{"SHA3-224(empty)", sha3.Sum224, "",
		"6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
	{"SHA3-256(empty)", sha3.Sum256, "",
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	{"SHA3-384(empty)", sha3.Sum384, "",
		"0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
	{"SHA3-512(empty)", sha3.Sum512, "",
		"a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	{"SHA3-224(abc)", sha3.Sum224, "616263",
		"e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
	{"SHA3-256(abc)", sha3.Sum256, "616263",
		"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	{"SHA3-384(abc)", sha3.Sum384, "616263",
		"ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25"},
	{"SHA3-512(abc)", sha3.Sum512, "616263",
		"b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
}

func RunSelftest(cmd *cobra.Command, args []string) {
	failures := 0
	for _, vec := range selftestVectors {
		digest, err := vec.sum(vec.input)
		if err != nil || digest != vec.expected {
			Red.Printf("FAIL %s\n     got:  %s (err: %v)\n     want: %s\n", vec.name, digest, err, vec.expected)
			failures++
			continue
		}
		Green.Printf("PASS %s\n", vec.name)
	}

	if failures > 0 {
		os.Exit(1)
	}
}
