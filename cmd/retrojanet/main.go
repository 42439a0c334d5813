package main

import (
	"os"
	"strconv"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// EnvVerbosity selects the log verbosity; higher numbers log more.
const EnvVerbosity = "RETROJANET_VERBOSITY"

func main() {
	commonlog.Configure(verbosityFromEnv(), nil)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func verbosityFromEnv() int {
	v, err := strconv.Atoi(os.Getenv(EnvVerbosity))
	if err != nil {
		return 0
	}
	return v
}
