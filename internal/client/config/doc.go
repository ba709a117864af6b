// Package config loads runtime configuration for the mindbrew client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the catalog REST API
//	-r string   identity provider region
//	-p string   identity provider app client id
//	-d string   local sqlite database path
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000/api/v1",
//	  "auth_region": "us-east-1",
//	  "auth_client_id": "abc123",
//	  "db_path": "mindbrew.db",
//	  "resend_cooldown": "30s",
//	  "log_level": "info"
//	}
package config
