// Package config handles configuration for the QRKeeper CLI,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the QRKeeper CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend API (including the /api prefix).
//   - LocalStorePath: file holding the anonymous local record slot.
type Config struct {
	ServerBaseURL  string
	LocalStorePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000/api"
	c.LocalStorePath = "qr-data-v1.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
