package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIURL    = "EDUSHARE_API_URL"
	EnvSessionDB = "EDUSHARE_SESSION_DB"
	EnvLogLevel  = "EDUSHARE_LOG_LEVEL"
	EnvLogFormat = "EDUSHARE_LOG_FORMAT"
)

// envFile is loaded into the environment before it is read, if it exists.
var envFile = ".env"

// parseEnv overlays cfg with non-empty EDUSHARE_* variables.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for name, dst := range map[string]*string{
		EnvAPIURL:    &cfg.APIBaseURL,
		EnvSessionDB: &cfg.SessionDB,
		EnvLogLevel:  &cfg.LogLevel,
		EnvLogFormat: &cfg.LogFormat,
	} {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	return nil
}
