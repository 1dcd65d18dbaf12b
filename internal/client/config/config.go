package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the EduShare CLI.
//
// Fields:
//   - APIBaseURL: base URL of the REST backend, including the /api/v1 prefix.
//   - SessionDB: path of the local SQLite session database (":memory:" keeps
//     the session for the life of the process only).
//   - RedirectDelay: pause between "Login successful!" and the landing view.
//   - RequestTimeout: upper bound for one HTTP request.
//   - NotificationTTL: how long a notification stays current.
//   - LogLevel, LogFormat: diagnostic logging ("json" or console).
type Config struct {
	APIBaseURL      string
	SessionDB       string
	RedirectDelay   time.Duration
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.SessionDB = "session.db"
	c.RedirectDelay = 1500 * time.Millisecond
	c.RequestTimeout = 30 * time.Second
	c.NotificationTTL = 3 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
