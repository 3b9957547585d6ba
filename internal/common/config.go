package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment" validate:"required"` // "development" or "production" - production hides debug endpoints
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Logging     LoggingConfig   `toml:"logging"`
	Dashboard   DashboardConfig `toml:"dashboard"`
}

type ServerConfig struct {
	Port      int     `toml:"port" validate:"min=1,max=65535"`
	Host      string  `toml:"host" validate:"required"`
	RateLimit float64 `toml:"rate_limit" validate:"gte=0"` // Requests per second per client on /api/ (0 disables)
	RateBurst int     `toml:"rate_burst" validate:"gte=0"`
}

type StorageConfig struct {
	Type   string       `toml:"type" validate:"omitempty,oneof=badger"`
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required_without=InMemory"` // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"`                          // Delete database on startup for clean test runs
	InMemory       bool   `toml:"in_memory"`                                 // Keep everything in memory (tests, demos)
}

type LoggingConfig struct {
	Level      string   `toml:"level" validate:"oneof=debug info warn error"`
	Format     string   `toml:"format" validate:"oneof=text json"`
	Output     []string `toml:"output" validate:"dive,oneof=stdout console file"`
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// DashboardConfig controls where SKU evaluations are read from and how they are paged
type DashboardConfig struct {
	Collection      string   `toml:"collection" validate:"required"`       // Document collection holding SKU evaluations
	ListLimit       int      `toml:"list_limit" validate:"min=1"`          // Documents fetched for the dashboard list
	PageSize        int      `toml:"page_size" validate:"min=1,max=100"`   // Rows per dashboard page
	RefreshInterval string   `toml:"refresh_interval" validate:"required"` // e.g., "30s" - catalog and detail cache lifetime
	Categories      []string `toml:"categories"`                           // Category filter options shown in the UI
	SeedDir         string   `toml:"seed_dir"`                             // Directory of seed documents imported on startup
	ClientDebug     bool     `toml:"client_debug"`                         // Enable client-side debug logging
}

// NewDefaultConfig returns the configuration used when no file sets a value
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:      8085,
			Host:      "localhost",
			RateLimit: 20,
			RateBurst: 40,
		},
		Storage: StorageConfig{
			Type: "badger",
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
		},
		Dashboard: DashboardConfig{
			Collection:      "evals",
			ListLimit:       100,
			PageSize:        25,
			RefreshInterval: "30s",
			Categories:      []string{"Beef", "Poultry", "Seafood"},
			SeedDir:         "./seed",
		},
	}
}

// LoadFromFile loads configuration from a single TOML file
func LoadFromFile(path string) (*Config, error) {
	return LoadFromFiles(path)
}

// LoadFromFiles loads defaults, merges each TOML file in order (later files
// override earlier ones), then applies environment overrides and validates.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies PRICEDASH_* environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PRICEDASH_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("PRICEDASH_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("PRICEDASH_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if limit := os.Getenv("PRICEDASH_SERVER_RATE_LIMIT"); limit != "" {
		if l, err := strconv.ParseFloat(limit, 64); err == nil {
			config.Server.RateLimit = l
		}
	}

	// Storage configuration
	if badgerPath := os.Getenv("PRICEDASH_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if reset := os.Getenv("PRICEDASH_BADGER_RESET_ON_STARTUP"); reset != "" {
		if r, err := strconv.ParseBool(reset); err == nil {
			config.Storage.Badger.ResetOnStartup = r
		}
	}
	if inMemory := os.Getenv("PRICEDASH_BADGER_IN_MEMORY"); inMemory != "" {
		if m, err := strconv.ParseBool(inMemory); err == nil {
			config.Storage.Badger.InMemory = m
		}
	}

	// Logging configuration
	if level := os.Getenv("PRICEDASH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("PRICEDASH_LOG_OUTPUT"); output != "" {
		config.Logging.Output = splitString(output, ",")
	}

	// Dashboard configuration
	if collection := os.Getenv("PRICEDASH_DASHBOARD_COLLECTION"); collection != "" {
		config.Dashboard.Collection = collection
	}
	if limit := os.Getenv("PRICEDASH_DASHBOARD_LIST_LIMIT"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			config.Dashboard.ListLimit = l
		}
	}
	if interval := os.Getenv("PRICEDASH_DASHBOARD_REFRESH_INTERVAL"); interval != "" {
		config.Dashboard.RefreshInterval = interval
	}
	if seedDir := os.Getenv("PRICEDASH_DASHBOARD_SEED_DIR"); seedDir != "" {
		config.Dashboard.SeedDir = seedDir
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the struct tags and the refresh interval format
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.Dashboard.RefreshDuration(); err != nil {
		return fmt.Errorf("invalid configuration: dashboard.refresh_interval: %w", err)
	}
	return nil
}

// RefreshDuration parses RefreshInterval
func (d DashboardConfig) RefreshDuration() (time.Duration, error) {
	interval, err := time.ParseDuration(d.RefreshInterval)
	if err != nil {
		return 0, err
	}
	if interval < 0 {
		return 0, fmt.Errorf("must not be negative: %s", d.RefreshInterval)
	}
	return interval, nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// splitString splits a string by separator and trims whitespace
func splitString(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
