package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Estimator EstimatorConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EstimatorConfig holds cost-estimation configuration
type EstimatorConfig struct {
	CostPerKwINR      float64 `mapstructure:"cost_per_kw"`
	StateCapexPercent float64 `mapstructure:"state_capex_percent"`
}

// MatchingConfig holds scheme-matching configuration
type MatchingConfig struct {
	DefaultLimit       int  `mapstructure:"default_limit"`
	EnableDebugLogging bool `mapstructure:"debug"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/solarisreal/")

	// Environment variable settings
	v.SetEnvPrefix("SOLARIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Estimator defaults
	v.SetDefault("estimator.cost_per_kw", 65000.0)
	v.SetDefault("estimator.state_capex_percent", 0.0)

	// Matching defaults
	v.SetDefault("matching.default_limit", 3)
	v.SetDefault("matching.debug", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Estimator.CostPerKwINR <= 0 {
		return fmt.Errorf("estimator cost per kW must be positive, got: %v", config.Estimator.CostPerKwINR)
	}

	if config.Estimator.StateCapexPercent < 0 || config.Estimator.StateCapexPercent > 100 {
		return fmt.Errorf("state capex percent must be between 0 and 100, got: %v", config.Estimator.StateCapexPercent)
	}

	if config.Matching.DefaultLimit < 1 {
		return fmt.Errorf("matching default limit must be at least 1, got: %d", config.Matching.DefaultLimit)
	}

	return nil
}
