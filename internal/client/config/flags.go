package config

import (
	"flag"
	"os"

	"github.com/qrkeeper/qrkeeper/internal/flagx"
)

// parseFlags populates CLI Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   base URL of the backend API
//	-f string   path of the local record store file
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "b", config.ServerBaseURL, "backend API base URL")
	fs.StringVar(&config.LocalStorePath, "f", config.LocalStorePath, "local store file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
