// Package config loads runtime configuration for the EduShare CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with a .env file in the working directory loaded
//     first if present (see parseEnv). Variables already set win over .env.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-s string   session database path
//	-d float    redirect delay after login (seconds)
//	-t int      request timeout (seconds)
//
// Environment
//
//	EDUSHARE_API_URL, EDUSHARE_SESSION_DB, EDUSHARE_LOG_LEVEL, EDUSHARE_LOG_FORMAT
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "1.5s" or integer nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "api_base_url": "http://localhost:8000/api/v1",
//	  "session_db": "session.db",
//	  "redirect_delay": "1.5s",
//	  "request_timeout": "30s",
//	  "notification_ttl": "3s",
//	  "log_level": "warn",
//	  "log_format": "console"
//	}
package config
