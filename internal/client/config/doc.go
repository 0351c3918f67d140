// Package config loads runtime configuration for the vehiclehub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults). The API base URL
//     default is buildinfo.DefaultAPIBaseURL, fixed at build time.
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL, e.g. http://localhost:8080/api/v1
//	-d string   session database path ("" keeps the session in memory)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap
//	-t int      request timeout in seconds (0 = none)
//	-s int      default listing page size
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://fleet.example.com/api/v1",
//	  "database_path": "/var/lib/vehiclehub/session.db",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "request_timeout": "30s",
//	  "page_size": 25
//	}
//
// Keys that are absent leave the earlier value in place.
package config
