package config

import (
	"time"

	"github.com/dmitrijs2005/vehiclehub/internal/buildinfo"
)

// Config holds runtime settings for the vehiclehub CLI.
//
// Fields:
//   - APIBaseURL: API origin plus the /api/v1 prefix.
//   - DatabasePath: SQLite file holding the persisted session; "" keeps the
//     session in memory only.
//   - LogLevel / LogFormat: see logging.New.
//   - RequestTimeout: per-request limit; 0 waits for the transport.
//   - PageSize: default page size for listings.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = buildinfo.DefaultAPIBaseURL
	c.DatabasePath = "vehiclehub.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.RequestTimeout = 0
	c.PageSize = 10
}

// LoadConfig applies defaults, then the JSON file (if any), then flags.
// Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
