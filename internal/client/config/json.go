package config

import (
	"encoding/json"
	"os"

	"github.com/qrkeeper/qrkeeper/internal/flagx"
)

// JsonConfig is the DTO for reading the CLI's JSON configuration file.
type JsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	LocalStorePath string `json:"local_store_path"`
}

// parseJson loads configuration from the JSON file named by -c/-config.
// Absent flags mean no JSON file is loaded; unreadable files panic.
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

	if c.ServerBaseURL != "" {
		config.ServerBaseURL = c.ServerBaseURL
	}
	if c.LocalStorePath != "" {
		config.LocalStorePath = c.LocalStorePath
	}
}
