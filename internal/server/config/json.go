package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/qrkeeper/qrkeeper/internal/flagx"
	"github.com/qrkeeper/qrkeeper/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for the token lifetime, which allows parsing
// both string values such as "720h" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	Environment           string         `json:"environment"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into config. Absent flags mean no JSON file is loaded.
// An unreadable or invalid file panics: a config file that exists but
// cannot be applied should not be silently ignored.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.Environment != "" {
		config.Environment = c.Environment
	}
}
