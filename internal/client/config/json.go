package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/edushare/internal/flagx"
	"github.com/dmitrijs2005/edushare/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell an absent key from an empty one.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	SessionDB       *string         `json:"session_db"`
	RedirectDelay   *timex.Duration `json:"redirect_delay"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	NotificationTTL *timex.Duration `json:"notification_ttl"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag nothing happens.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.SessionDB, jc.SessionDB)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationTTL != nil {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
