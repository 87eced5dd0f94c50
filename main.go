package main

import (
	"github.com/deso-protocol/fips202/cmd"
)

func main() {
	// There is a lot of indirection here introduced by the fact that we are
	// using Viper to manage our command-line flags. When this binary is run,
	// a command is passed, such as "hash", which triggers a Run() function
	// defined in the cmd package. For example, calling:
	// $ ./main hash 616263
	// would trigger the RunHash() function defined in cmd/hash.go. The flags
	// that are available are also all defined in that file.
	cmd.Execute()
}
