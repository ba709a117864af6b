package config

import (
	"flag"
	"os"

	"github.com/lvtran/mindbrew/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the catalog REST API
//	-r string   identity provider region
//	-p string   identity provider app client id
//	-d string   local sqlite database path
//	-l string   log level
//
// The function filters os.Args down to the flags it owns, using
// flagx.FilterArgs, to avoid interfering with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-p", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the catalog REST API")
	fs.StringVar(&cfg.AuthRegion, "r", cfg.AuthRegion, "identity provider region")
	fs.StringVar(&cfg.AuthClientID, "p", cfg.AuthClientID, "identity provider app client id")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local sqlite database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
