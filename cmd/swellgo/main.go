package main

import (
	"os"

	"github.com/bnema/swellgo/internal/cli/cmd"
	"github.com/bnema/swellgo/internal/logging"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
)

func main() {
	logging.InitStartupTrace(earlyLogLevel())
	cmd.SetVersion(version)
	cmd.Execute()
}

// earlyLogLevel resolves the log level the startup trace should gate on
// before configuration has actually loaded (run.go loads it later, inside
// a cobra RunE). SWELLGO_LOGGING_LEVEL mirrors the env binding
// internal/config.NewManager registers for logging.level, so a trace
// requested via the environment is honored from process start rather than
// only once config.Manager.Load runs.
func earlyLogLevel() string {
	if lvl := os.Getenv("SWELLGO_LOGGING_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
