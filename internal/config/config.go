package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskdeck application
type Config struct {
	Database    DatabaseConfig
	Store       StoreConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Review      ReviewConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TD_DB_DIR"`
	Filename       string        `env:"TD_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TD_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TD_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TD_DB_DIR_PERMISSIONS"`
}

// StoreConfig holds task collection storage configuration
type StoreConfig struct {
	Slot          string `env:"TD_STORE_SLOT"`
	DefaultCourse string `env:"TD_STORE_DEFAULT_COURSE"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DeadlineFormat string `env:"TD_DISPLAY_DEADLINE_FORMAT"`
	OverdueMarker  string `env:"TD_DISPLAY_OVERDUE_MARKER"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TD_APP_TIMEOUT"`
	Verbose bool          `env:"TD_APP_VERBOSE"`
}

// ReviewConfig holds review analysis service configuration
type ReviewConfig struct {
	BaseURL string        `env:"TD_REVIEW_BASE_URL"`
	Timeout time.Duration `env:"TD_REVIEW_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".td")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "td.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Store: StoreConfig{
			Slot:          "tasks",
			DefaultCourse: "General",
		},
		Display: DisplayConfig{
			DeadlineFormat: "Mon, 02 Jan 2006",
			OverdueMarker:  "OVERDUE",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Review: ReviewConfig{
			BaseURL: "http://localhost:6543",
			Timeout: 30 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TD_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TD_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TD_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TD_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TD_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Store configuration
	if slot := os.Getenv("TD_STORE_SLOT"); slot != "" {
		c.Store.Slot = slot
	}
	if course := os.Getenv("TD_STORE_DEFAULT_COURSE"); course != "" {
		c.Store.DefaultCourse = course
	}

	// Display configuration
	if format := os.Getenv("TD_DISPLAY_DEADLINE_FORMAT"); format != "" {
		c.Display.DeadlineFormat = format
	}
	if marker := os.Getenv("TD_DISPLAY_OVERDUE_MARKER"); marker != "" {
		c.Display.OverdueMarker = marker
	}

	// Application configuration
	if timeout := os.Getenv("TD_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TD_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Review configuration
	if baseURL := os.Getenv("TD_REVIEW_BASE_URL"); baseURL != "" {
		c.Review.BaseURL = baseURL
	}
	if timeout := os.Getenv("TD_REVIEW_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Review.Timeout = d
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Store.Slot == "" {
		return &ConfigError{Field: "store.slot", Message: "store slot cannot be empty"}
	}
	if c.Store.DefaultCourse == "" {
		return &ConfigError{Field: "store.default_course", Message: "default course cannot be empty"}
	}

	if c.Display.DeadlineFormat == "" {
		return &ConfigError{Field: "display.deadline_format", Message: "deadline format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Review.BaseURL == "" {
		return &ConfigError{Field: "review.base_url", Message: "review base URL cannot be empty"}
	}
	if c.Review.Timeout <= 0 {
		return &ConfigError{Field: "review.timeout", Message: "review timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface for ConfigError
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for %s: %s", e.Field, e.Message)
}

// Load creates a configuration from defaults, applies environment
// overrides, and validates the result.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
