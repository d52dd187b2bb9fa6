// Package config loads the backend configuration.
//
// Values come from an optional config.yaml and from environment variables,
// with the environment taking precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Profile  ProfileConfig  `mapstructure:"profile"`
}

type ServerConfig struct {
	Port             string   `mapstructure:"port"`
	Mode             string   `mapstructure:"mode"`       // gin mode: debug or release
	LogFormat        string   `mapstructure:"log_format"` // human or json
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
	EnablePprof      bool     `mapstructure:"enable_pprof"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	Expiry      time.Duration `mapstructure:"-"`
}

// ProfileConfig holds the defaults applied to newly created profiles.
type ProfileConfig struct {
	DefaultCurrency    string `mapstructure:"default_currency"`
	DefaultMonthlyGoal int64  `mapstructure:"default_monthly_goal"`
}

// Load reads the configuration.
//
// A config.yaml in the working directory or in ./config overrides the
// defaults, environment variables with the HUSTLELEDGER_ prefix override
// both (e.g. HUSTLELEDGER_SERVER_PORT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.cors_allow_origins", []string{})
	v.SetDefault("server.enable_pprof", false)
	v.SetDefault("database.path", "data/hustleledger.db")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hours", 72)
	v.SetDefault("profile.default_currency", "USD")
	v.SetDefault("profile.default_monthly_goal", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional, everything else is an error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	v.SetEnvPrefix("hustleledger")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not parse configuration: %w", err)
	}

	config.JWT.Expiry = time.Duration(config.JWT.ExpireHours) * time.Hour

	return &config, nil
}
