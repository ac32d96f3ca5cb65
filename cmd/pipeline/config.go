package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config represents the application's configuration structure.
type Config struct {
	SourcePath    string `json:"source-path" mapstructure:"source-path"`
	DBPath        string `json:"db-path" mapstructure:"db-path"`
	ManifestPath  string `json:"manifest-path" mapstructure:"manifest-path"`
	LogLevel      string `json:"log-level" mapstructure:"log-level"`
	SkipMalformed bool   `json:"skip-malformed" mapstructure:"skip-malformed"`
}

var requiredFields = []string{
	"source-path",
}

// field: default value
var optionalFields = map[string]interface{}{
	"db-path":        "orders.db",
	"log-level":      "INFO",
	"skip-malformed": false,
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file.
func InitConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}
	for optField, defaultValue := range optionalFields {
		v.SetDefault(optField, defaultValue)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}
