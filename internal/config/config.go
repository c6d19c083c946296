package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig     `json:"app"`
	Cache   CacheConfig   `json:"cache"`
	Log     LogConfig     `json:"log"`
	Reports ReportsConfig `json:"reports"`
	Policy  PolicyConfig  `json:"policy"`
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port string `json:"port"`
}

// Address returns the full host:port address for the server
func (a *AppConfig) Address() string {
	return a.Host + a.Port
}

// BaseURL returns the base URL for the server
func (a *AppConfig) BaseURL() string {
	return "http://" + a.Host + a.Port
}

// CacheMode represents the cache implementation mode
type CacheMode string

const (
	CacheModeNone CacheMode = "none"
	CacheModeMem  CacheMode = "mem"
)

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Mode CacheMode     `json:"mode"`
	TTL  time.Duration `json:"ttl"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// ReportsConfig holds report persistence configuration
type ReportsConfig struct {
	Dir string `json:"dir"`
}

// PolicyConfig holds rule table configuration
type PolicyConfig struct {
	// File is an optional YAML policy overlay; empty means built-in rules.
	File string `json:"file"`
}

// Load loads configuration from environment variables on top of defaults.
// Command-line overrides are applied by the CLI layer afterwards.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name: "certcomply",
			Host: "0.0.0.0",
			Port: ":8080",
		},
		Cache: CacheConfig{
			Mode: CacheModeMem,
			TTL:  5 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Reports: ReportsConfig{
			Dir: "reports",
		},
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() error {
	if name := os.Getenv("CERTCOMPLY_APP_NAME"); name != "" {
		c.App.Name = name
	}

	if host := os.Getenv("CERTCOMPLY_HOST"); host != "" {
		c.App.Host = host
	}

	if port := os.Getenv("CERTCOMPLY_PORT"); port != "" {
		// Ensure port starts with `:` if not provided
		if port[0] != ':' {
			port = ":" + port
		}
		c.App.Port = port
	}

	if mode := os.Getenv("CERTCOMPLY_CACHE_MODE"); mode != "" {
		switch CacheMode(mode) {
		case CacheModeNone, CacheModeMem:
			c.Cache.Mode = CacheMode(mode)
		default:
			return fmt.Errorf("invalid CERTCOMPLY_CACHE_MODE value '%s': must be 'none' or 'mem'", mode)
		}
	}

	if ttl := os.Getenv("CERTCOMPLY_CACHE_TTL"); ttl != "" {
		duration, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid CERTCOMPLY_CACHE_TTL value '%s': %w", ttl, err)
		}
		c.Cache.TTL = duration
	}

	if level := os.Getenv("CERTCOMPLY_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if format := os.Getenv("CERTCOMPLY_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}

	if dir := os.Getenv("CERTCOMPLY_REPORTS_DIR"); dir != "" {
		c.Reports.Dir = dir
	}

	if file := os.Getenv("CERTCOMPLY_POLICY_FILE"); file != "" {
		c.Policy.File = file
	}

	return nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name cannot be empty")
	}

	if c.App.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL cannot be negative")
	}

	if c.Cache.Mode == CacheModeMem && c.Cache.TTL == 0 {
		return fmt.Errorf("cache TTL cannot be zero when cache is enabled")
	}

	if c.Reports.Dir == "" {
		return fmt.Errorf("reports directory cannot be empty")
	}

	return nil
}

// String returns a string representation of the config for debugging
func (c *Config) String() string {
	return fmt.Sprintf("Config{App: {Name: %s, Port: %s}, Cache: {Mode: %v, TTL: %s}, Log: {Level: %s, Format: %s}, Reports: {Dir: %s}}",
		c.App.Name, c.App.Port, c.Cache.Mode, c.Cache.TTL, c.Log.Level, c.Log.Format, c.Reports.Dir)
}
