// Package config loads the drivectl configuration from flags, environment
// variables, and an optional config file.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/drivescout/graph-drive-client/pkg/client"
	"github.com/drivescout/graph-drive-client/pkg/sysproxy"
)

// Config represents the application configuration.
type Config struct {
	Graph GraphConfig `mapstructure:"graph"`
	Proxy ProxyConfig `mapstructure:"proxy"`
	Log   LogConfig   `mapstructure:"log"`
}

// GraphConfig contains Graph API configuration.
type GraphConfig struct {
	AccessToken    string `mapstructure:"access_token" validate:"required"`
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1,lte=300"`
}

// ProxyConfig contains outbound proxy configuration. When Endpoint is
// empty and FromEnvironment is true, the system environment is consulted.
type ProxyConfig struct {
	Endpoint        string `mapstructure:"endpoint" validate:"omitempty,url"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	FromEnvironment bool   `mapstructure:"from_environment"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load loads the configuration from viper and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	setDefaults()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("graph.base_url", client.DefaultBaseURL)
	viper.SetDefault("graph.timeout_seconds", 30)

	viper.SetDefault("proxy.from_environment", true)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", false)

	// Environment variable mappings
	viper.BindEnv("graph.access_token", "GRAPH_ACCESS_TOKEN")
	viper.BindEnv("graph.base_url", "GRAPH_BASE_URL")
	viper.BindEnv("proxy.endpoint", "GRAPH_PROXY_ENDPOINT")
	viper.BindEnv("proxy.username", "GRAPH_PROXY_USERNAME")
	viper.BindEnv("proxy.password", "GRAPH_PROXY_PASSWORD")
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Graph.TimeoutSeconds) * time.Second
}

// ProxySettings resolves the effective proxy settings: an explicit
// endpoint takes precedence, then environment discovery if enabled.
func (c *Config) ProxySettings() (client.ProxySettings, error) {
	if c.Proxy.Endpoint != "" {
		endpoint, err := url.Parse(c.Proxy.Endpoint)
		if err != nil {
			return client.ProxySettings{}, fmt.Errorf("parse proxy endpoint: %w", err)
		}

		ps := client.ProxySettings{Endpoint: endpoint}
		if c.Proxy.Username != "" {
			ps.Credentials = &client.ProxyCredentials{
				Username: c.Proxy.Username,
				Password: c.Proxy.Password,
			}
		}
		return ps, nil
	}

	if c.Proxy.FromEnvironment {
		return sysproxy.Resolve(), nil
	}

	return client.ProxySettings{}, nil
}
