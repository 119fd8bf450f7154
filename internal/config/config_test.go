package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	t.Run("database defaults", func(t *testing.T) {
		assert.Contains(t, cfg.Database.Dir, ".td")
		assert.Equal(t, "td.db", cfg.Database.Filename)
		assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
		assert.Equal(t, uint32(0755), cfg.Database.DirPermissions)
	})

	t.Run("store defaults", func(t *testing.T) {
		assert.Equal(t, "tasks", cfg.Store.Slot)
		assert.Equal(t, "General", cfg.Store.DefaultCourse)
	})

	t.Run("display defaults", func(t *testing.T) {
		assert.Equal(t, "Mon, 02 Jan 2006", cfg.Display.DeadlineFormat)
		assert.Equal(t, "OVERDUE", cfg.Display.OverdueMarker)
	})

	t.Run("application defaults", func(t *testing.T) {
		assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
		assert.False(t, cfg.Application.Verbose)
	})

	t.Run("review defaults", func(t *testing.T) {
		assert.Equal(t, "http://localhost:6543", cfg.Review.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Review.Timeout)
	})
}

func TestGetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data/td"
	cfg.Database.Filename = "tasks.db"

	assert.Equal(t, "/data/td/tasks.db", cfg.GetDatabasePath())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Run("overrides values from the environment", func(t *testing.T) {
		t.Setenv("TD_DB_DIR", "/custom/dir")
		t.Setenv("TD_DB_FILENAME", "custom.db")
		t.Setenv("TD_DB_QUERY_TIMEOUT", "3s")
		t.Setenv("TD_STORE_SLOT", "semester-2")
		t.Setenv("TD_STORE_DEFAULT_COURSE", "Umum")
		t.Setenv("TD_DISPLAY_OVERDUE_MARKER", "LATE")
		t.Setenv("TD_APP_VERBOSE", "true")
		t.Setenv("TD_REVIEW_BASE_URL", "http://reviews:6543")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, "/custom/dir", cfg.Database.Dir)
		assert.Equal(t, "custom.db", cfg.Database.Filename)
		assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, "semester-2", cfg.Store.Slot)
		assert.Equal(t, "Umum", cfg.Store.DefaultCourse)
		assert.Equal(t, "LATE", cfg.Display.OverdueMarker)
		assert.True(t, cfg.Application.Verbose)
		assert.Equal(t, "http://reviews:6543", cfg.Review.BaseURL)
	})

	t.Run("keeps defaults when variables are unset", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, "td.db", cfg.Database.Filename)
		assert.Equal(t, "tasks", cfg.Store.Slot)
	})

	t.Run("ignores unparseable duration values", func(t *testing.T) {
		t.Setenv("TD_DB_QUERY_TIMEOUT", "soon")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	})

	t.Run("parses directory permissions as octal", func(t *testing.T) {
		t.Setenv("TD_DB_DIR_PERMISSIONS", "700")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	})
}

func TestValidate(t *testing.T) {
	t.Run("accepts the default configuration", func(t *testing.T) {
		assert.NoError(t, NewConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty database dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"empty database filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"non-positive query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"non-positive write timeout", func(c *Config) { c.Database.WriteTimeout = -time.Second }, "database.write_timeout"},
		{"empty store slot", func(c *Config) { c.Store.Slot = "" }, "store.slot"},
		{"empty default course", func(c *Config) { c.Store.DefaultCourse = "" }, "store.default_course"},
		{"empty deadline format", func(c *Config) { c.Display.DeadlineFormat = "" }, "display.deadline_format"},
		{"non-positive application timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
		{"empty review base URL", func(c *Config) { c.Review.BaseURL = "" }, "review.base_url"},
		{"non-positive review timeout", func(c *Config) { c.Review.Timeout = 0 }, "review.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("returns a validated configuration", func(t *testing.T) {
		t.Setenv("TD_STORE_SLOT", "exam-prep")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "exam-prep", cfg.Store.Slot)
	})
}
