package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/careernav/internal/ranker"
)

// Config is the root configuration for careernav.
type Config struct {
	Source    SourceConfig
	Retry     RetryConfig
	Cache     CacheConfig
	Form      FormConfig
	Dashboard DashboardConfig
	LogFile   string // interactive sessions log here; empty discards logs
}

// SourceConfig selects the recommendation engine.
type SourceConfig struct {
	Type    string        // "file", "http" or "openai"
	Path    string        // snapshot fixture, required if type is "file"
	URL     string        // engine endpoint for "http", API base URL for "openai"
	APIKey  string        // expanded from env var by Load
	Model   string        // model identifier, required if type is "openai"
	Timeout time.Duration // per-request timeout

	// MinInterval spaces consecutive requests to the engine; zero disables it.
	MinInterval time.Duration
}

// RetryConfig controls retries of transient engine failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// CacheConfig controls the SQLite snapshot cache.
type CacheConfig struct {
	Enabled bool
	Path    string
	TTL     time.Duration
}

// FormConfig tunes the intake form.
type FormConfig struct {
	MaxSkills int
}

// DashboardConfig holds the initial certification view.
type DashboardConfig struct {
	DefaultSort   ranker.SortKey
	DefaultFilter ranker.CostFilter
}

const (
	SourceFile   = "file"
	SourceHTTP   = "http"
	SourceOpenAI = "openai"

	defaultOpenAIBaseURL = "https://api.openai.com/v1"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Source    rawSourceConfig    `yaml:"source"`
	Retry     rawRetryConfig     `yaml:"retry"`
	Cache     rawCacheConfig     `yaml:"cache"`
	Form      rawFormConfig      `yaml:"form"`
	Dashboard rawDashboardConfig `yaml:"dashboard"`
	LogFile   string             `yaml:"log_file"`
}

type rawSourceConfig struct {
	Type    string `yaml:"type"`
	Path    string `yaml:"path"`
	URL     string `yaml:"url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout     string `yaml:"timeout"`
	MinInterval string `yaml:"min_interval"`
}

type rawRetryConfig struct {
	MaxRetries *int   `yaml:"max_retries"`
	BaseDelay  string `yaml:"base_delay"`
}

type rawCacheConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
	TTL     string `yaml:"ttl"`
}

type rawFormConfig struct {
	MaxSkills *int `yaml:"max_skills"`
}

type rawDashboardConfig struct {
	DefaultSort   string `yaml:"default_sort"`
	DefaultFilter string `yaml:"default_filter"`
}

// Default returns the configuration used when no config file exists: the
// bundled fixture snapshot, caching on, ten skills per category.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Type:    SourceFile,
			Path:    "fixtures/snapshot.yaml",
			Timeout:     2 * time.Minute,
			MinInterval: time.Second,
		},
		Retry: RetryConfig{
			MaxRetries: 2,
			BaseDelay:  2 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "careernav.db",
			TTL:     24 * time.Hour,
		},
		Form:      FormConfig{MaxSkills: 10},
		Dashboard: DashboardConfig{DefaultSort: ranker.SortRelevance, DefaultFilter: ranker.FilterAll},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
// Fields left out of the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg, err := fromRaw(raw)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func fromRaw(raw rawConfig) (*Config, error) {
	cfg := Default()
	var err error

	if raw.Source.Type != "" {
		cfg.Source.Type = raw.Source.Type
	}
	if raw.Source.Path != "" {
		cfg.Source.Path = raw.Source.Path
	}
	cfg.Source.URL = raw.Source.URL
	if cfg.Source.Type == SourceOpenAI && cfg.Source.URL == "" {
		cfg.Source.URL = defaultOpenAIBaseURL
	}
	cfg.Source.APIKey = raw.Source.APIKey
	cfg.Source.Model = raw.Source.Model
	if raw.Source.Timeout != "" {
		cfg.Source.Timeout, err = time.ParseDuration(raw.Source.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse source.timeout %q: %w", raw.Source.Timeout, err)
		}
	}

	if raw.Source.MinInterval != "" {
		cfg.Source.MinInterval, err = time.ParseDuration(raw.Source.MinInterval)
		if err != nil {
			return nil, fmt.Errorf("parse source.min_interval %q: %w", raw.Source.MinInterval, err)
		}
	}

	if raw.Retry.MaxRetries != nil {
		cfg.Retry.MaxRetries = *raw.Retry.MaxRetries
	}
	if raw.Retry.BaseDelay != "" {
		cfg.Retry.BaseDelay, err = time.ParseDuration(raw.Retry.BaseDelay)
		if err != nil {
			return nil, fmt.Errorf("parse retry.base_delay %q: %w", raw.Retry.BaseDelay, err)
		}
	}

	if raw.Cache.Enabled != nil {
		cfg.Cache.Enabled = *raw.Cache.Enabled
	}
	if raw.Cache.Path != "" {
		cfg.Cache.Path = raw.Cache.Path
	}
	if raw.Cache.TTL != "" {
		cfg.Cache.TTL, err = time.ParseDuration(raw.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("parse cache.ttl %q: %w", raw.Cache.TTL, err)
		}
	}

	if raw.Form.MaxSkills != nil {
		cfg.Form.MaxSkills = *raw.Form.MaxSkills
	}

	if raw.Dashboard.DefaultSort != "" {
		cfg.Dashboard.DefaultSort, err = ranker.ParseSortKey(raw.Dashboard.DefaultSort)
		if err != nil {
			return nil, fmt.Errorf("parse dashboard.default_sort: %w", err)
		}
	}
	if raw.Dashboard.DefaultFilter != "" {
		cfg.Dashboard.DefaultFilter, err = ranker.ParseFilter(raw.Dashboard.DefaultFilter)
		if err != nil {
			return nil, fmt.Errorf("parse dashboard.default_filter: %w", err)
		}
	}

	cfg.LogFile = raw.LogFile
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Source.Type {
	case SourceFile:
		if cfg.Source.Path == "" {
			return fmt.Errorf("source.path is required when type is %q", SourceFile)
		}
	case SourceHTTP:
		if cfg.Source.URL == "" {
			return fmt.Errorf("source.url is required when type is %q", SourceHTTP)
		}
	case SourceOpenAI:
		if cfg.Source.APIKey == "" {
			return fmt.Errorf("source.api_key is required when type is %q", SourceOpenAI)
		}
		if cfg.Source.Model == "" {
			return fmt.Errorf("source.model is required when type is %q", SourceOpenAI)
		}
	default:
		return fmt.Errorf("source.type must be one of file, http, openai, got %q", cfg.Source.Type)
	}

	if cfg.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive, got %v", cfg.Source.Timeout)
	}
	if cfg.Source.MinInterval < 0 {
		return fmt.Errorf("source.min_interval must not be negative, got %v", cfg.Source.MinInterval)
	}
	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative, got %d", cfg.Retry.MaxRetries)
	}
	if cfg.Retry.BaseDelay <= 0 {
		return fmt.Errorf("retry.base_delay must be positive, got %v", cfg.Retry.BaseDelay)
	}
	if cfg.Cache.Enabled {
		if cfg.Cache.Path == "" {
			return fmt.Errorf("cache.path is required when cache.enabled is true")
		}
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", cfg.Cache.TTL)
		}
	}
	if cfg.Form.MaxSkills <= 0 {
		return fmt.Errorf("form.max_skills must be positive, got %d", cfg.Form.MaxSkills)
	}

	return nil
}
