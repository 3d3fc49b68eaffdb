package config

import (
	"github.com/spf13/viper"
)

// Config holds the server runtime configuration.
type Config struct {
	Host            string
	Port            string
	Env             string
	DefaultUnitCost int64
	LogLevel        string
}

// Load returns the configuration with defaults applied. Values come from
// viper, which main wires to the .env file and the process environment.
func Load() *Config {
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("x402.default_unit_cost", 1)
	viper.SetDefault("log.level", "info")

	return &Config{
		Host:            viper.GetString("server.host"),
		Port:            viper.GetString("server.port"),
		Env:             viper.GetString("app.env"),
		DefaultUnitCost: viper.GetInt64("x402.default_unit_cost"),
		LogLevel:        viper.GetString("log.level"),
	}
}
