package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Harbor   HarborConfig   `mapstructure:"harbor"`
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HarborConfig names the harbor and the port it sits in.
type HarborConfig struct {
	Name     string `mapstructure:"name"`
	Location string `mapstructure:"location"` // UN/LOCODE
}

// EndpointConfig holds the rate limit and circuit breaker settings shared by
// every service endpoint.
type EndpointConfig struct {
	RateLimit          float64       `mapstructure:"rate_limit"`
	Burst              int           `mapstructure:"burst"`
	BreakerMaxRequests uint32        `mapstructure:"breaker_max_requests"`
	BreakerInterval    time.Duration `mapstructure:"breaker_interval"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
}

// TracingConfig holds zipkin tracing configuration.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	HostPort    string `mapstructure:"host_port"`
}

// MetricsConfig holds prometheus naming.
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "logfmt")
	v.SetDefault("harbor.name", "harbor")
	v.SetDefault("harbor.location", "NLRTM")
	v.SetDefault("endpoint.rate_limit", 0) // unlimited
	v.SetDefault("endpoint.burst", 1)
	v.SetDefault("endpoint.breaker_max_requests", 1)
	v.SetDefault("endpoint.breaker_interval", "0s")
	v.SetDefault("endpoint.breaker_timeout", "60s")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "harbor")
	v.SetDefault("tracing.host_port", "")
	v.SetDefault("metrics.namespace", "harbor")
	v.SetDefault("metrics.subsystem", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// A missing file falls back to defaults
		}
	}

	v.SetEnvPrefix("HARBOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
