package cmd

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/deso-protocol/fips202/sha3"
)

var hashCmd = &cobra.Command{
	Use:   "hash [flags] HEX_MESSAGE...",
	Short: "Hash hex-encoded messages",
	Long: `Hashes each hex-encoded message argument with the configured SHA-3
function and prints one lowercase hex digest per line, in argument order.
Messages must describe whole bytes, so an odd number of hex characters is
rejected.`,
	Args: cobra.MinimumNArgs(1),
	Run:  RunHash,
}

func init() {
	SetupHashFlags(hashCmd)
	rootCmd.AddCommand(hashCmd)
}

// SumFuncForAlgorithm maps an algorithm name to its hash function.
func SumFuncForAlgorithm(algorithm string) (func(string) (string, error), error) {
	switch algorithm {
	case "sha3-224":
		return sha3.Sum224, nil
	case "sha3-256":
		return sha3.Sum256, nil
	case "sha3-384":
		return sha3.Sum384, nil
	case "sha3-512":
		return sha3.Sum512, nil
	}
	return nil, errors.Errorf("unknown algorithm (%s), expected one of: "+
		"sha3-224, sha3-256, sha3-384, sha3-512", algorithm)
}

func RunHash(cmd *cobra.Command, args []string) {
	// Parse the configuration (can use CLI flags, environment variables, or config file)
	config := LoadConfig()
	SetUpLogging(config)

	sumFunc, err := SumFuncForAlgorithm(config.Algorithm)
	if err != nil {
		glog.Fatal(err)
	}

	start := time.Now()

	// Each call owns its own state, so independent messages hash in
	// parallel with no coordination.
	digests := make([]string, len(args))
	var group errgroup.Group
	for ii := range args {
		ii := ii
		group.Go(func() error {
			digest, err := sumFunc(args[ii])
			if err != nil {
				return errors.Wrapf(err, "hashing message %d", ii+1)
			}
			digests[ii] = digest
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		glog.Fatal(err)
	}

	glog.V(1).Infof("Hashed %d message(s) with %s in %v", len(args), config.Algorithm, time.Since(start))

	for _, digest := range digests {
		fmt.Println(digest)
	}
}

func SetupHashFlags(cmd *cobra.Command) {
	// Hashing
	cmd.PersistentFlags().String("algorithm", "sha3-256",
		"The hash function to apply. One of sha3-224, sha3-256, sha3-384, sha3-512.")

	// Logging
	cmd.PersistentFlags().String("log-dir", "", "The directory for logs")
	cmd.PersistentFlags().Uint64("glog-v", 0, "The log level. 0 = INFO, 1 = DEBUG, 2 = TRACE. Defaults to zero")
	cmd.PersistentFlags().String("glog-vmodule", "",
		"The syntax of the argument is a comma-separated list of pattern=N, "+
			"where pattern is a literal file name (minus the \".go\" suffix) or \"glob\" "+
			"pattern and N is a V level. For instance, -vmodule=gopher*=3 sets the V "+
			"level to 3 in all Go files whose names begin \"gopher\".")

	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		viper.BindPFlag(flag.Name, flag)
	})
}
