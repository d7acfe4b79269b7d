// Package config provides configuration loading and validation for the
// CareerOS skill-gap engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonsiu/career-os-sub001/internal/analytics"
	"github.com/jonsiu/career-os-sub001/internal/coursesearch"
)

// Defaults applied when neither config file nor environment provide a value.
const (
	DefaultPort            = 8080
	DefaultWeeklyHours     = 10.0
	DefaultCacheTTLMinutes = 1440 // 24h; taxonomy data changes rarely
)

// Config is the engine configuration, loadable from a JSON file. All fields
// are optional; missing values use defaults or environment variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Taxonomy
	TaxonomyPath    string `json:"taxonomy_path,omitempty"`     // role-skills JSON snapshot
	CacheTTLMinutes int    `json:"cache_ttl_minutes,omitempty"` // taxonomy lookup cache

	// Analysis
	WeeklyHours float64 `json:"weekly_availability_hours,omitempty"`

	// Collaborators
	CourseProviders []coursesearch.Config `json:"course_providers,omitempty"`
	ClickSink       analytics.Config      `json:"click_sink,omitempty"`
}

// Load reads configuration from a JSON file. An empty path returns defaults
// filled from the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv fills empty fields from environment variables.
func (c *Config) applyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.TaxonomyPath == "" {
		c.TaxonomyPath = os.Getenv("TAXONOMY_PATH")
	}
	if c.ClickSink.Kind == "" {
		c.ClickSink.Kind = os.Getenv("CLICK_SINK")
	}
	if c.ClickSink.QueueURL == "" {
		c.ClickSink.QueueURL = os.Getenv("RABBITMQ_URL")
	}
}

// applyDefaults fills remaining zero values.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.WeeklyHours == 0 {
		c.WeeklyHours = DefaultWeeklyHours
	}
	if c.CacheTTLMinutes == 0 {
		c.CacheTTLMinutes = DefaultCacheTTLMinutes
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.WeeklyHours < 0 {
		return fmt.Errorf("config error: 'weekly_availability_hours' must be non-negative")
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}
	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy snapshot not found: %s", c.TaxonomyPath)
		}
	}
	for i, p := range c.CourseProviders {
		if p.Kind != coursesearch.KindAPI && p.Kind != coursesearch.KindCatalog {
			return fmt.Errorf("config error: course_providers[%d] has unknown kind %q", i, p.Kind)
		}
		if p.Name == "" {
			return fmt.Errorf("config error: course_providers[%d] is missing a name", i)
		}
	}
	return nil
}
