package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/edushare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-s string   session database path (default from Config)
//	-d float    redirect delay after login in seconds (default from Config)
//	-t int      request timeout in seconds (default from Config)
//
// Note: args are filtered with flagx.FilterArgs first, so flags owned by
// other stages (-c) do not make parsing fail.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database path")
	redirectDelay := fs.Float64("d", cfg.RedirectDelay.Seconds(), "redirect delay after login (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only flags given explicitly override, so sub-second JSON values survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.RedirectDelay = time.Duration(*redirectDelay * float64(time.Second))
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
	return nil
}
