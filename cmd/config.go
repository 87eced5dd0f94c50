package cmd

import (
	"flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/viper"
)

type Config struct {
	// Hashing
	Algorithm string

	// Logging
	LogDirectory string
	GlogV        uint64
	GlogVmodule  string
}

func LoadConfig() *Config {
	config := Config{}

	config.Algorithm = viper.GetString("algorithm")

	// Logging
	config.LogDirectory = viper.GetString("log-dir")
	config.GlogV = viper.GetUint64("glog-v")
	config.GlogVmodule = viper.GetString("glog-vmodule")

	return &config
}

// SetUpLogging wires the glog flags from the loaded config. glog only reads
// its configuration from the flag package, so the values pass through there.
func SetUpLogging(config *Config) {
	flag.Set("log_dir", config.LogDirectory)
	flag.Set("v", fmt.Sprintf("%d", config.GlogV))
	flag.Set("vmodule", config.GlogVmodule)
	flag.Set("alsologtostderr", "true")
	flag.Parse()
	glog.CopyStandardLogTo("INFO")
}
