// Package config loads and validates the collector configuration from YAML,
// with environment variable expansion and an embedded JSON schema check.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen    string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		AuthToken string        `yaml:"auth_token" json:"auth_token" jsonschema:"description=Bearer token protecting the management API (can use environment variable)"`
	} `yaml:"server" json:"server" jsonschema:"description=Management API server configuration"`

	Store struct {
		URL       string        `yaml:"url" json:"url" jsonschema:"required,description=Base URL of the metadata store RPC endpoint"`
		AuthToken string        `yaml:"auth_token" json:"auth_token" jsonschema:"description=Bearer token for the metadata store (can use environment variable)"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-call timeout for store requests"`
	} `yaml:"store" json:"store" jsonschema:"description=Metadata store configuration"`

	Blob struct {
		Endpoint        string `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=S3-compatible endpoint URL"`
		Region          string `yaml:"region" json:"region" jsonschema:"default=auto,description=Bucket region"`
		AccessKeyID     string `yaml:"access_key_id" json:"access_key_id" jsonschema:"required,description=Access key id (can use environment variable)"`
		SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key" jsonschema:"required,description=Secret access key (can use environment variable)"`
		Bucket          string `yaml:"bucket" json:"bucket" jsonschema:"required,description=Bucket holding mirrored images and payload backups"`
	} `yaml:"blob" json:"blob" jsonschema:"description=Object store configuration"`

	Schedule struct {
		FeedInterval    time.Duration `yaml:"feed_interval" json:"feed_interval" jsonschema:"default=1h,description=Feed cycle cadence"`
		RetryInterval   time.Duration `yaml:"retry_interval" json:"retry_interval" jsonschema:"default=2h,description=Image retry sweep cadence"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=24h,description=Retention cycle cadence"`
		DefaultFeedMins int           `yaml:"default_feed_minutes" json:"default_feed_minutes" jsonschema:"default=30,description=Default per-feed polling interval in minutes"`
		MaxWorkers      int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent feed fetches"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Feeds struct {
		File      string        `yaml:"file" json:"file" jsonschema:"default=feeds.json,description=Declarative feed list reconciled at startup"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=collector/1.0,description=User agent for feed requests"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-feed fetch timeout"`
	} `yaml:"feeds" json:"feeds" jsonschema:"description=Feed fetching configuration"`

	Images struct {
		MaxAttempts int           `yaml:"max_attempts" json:"max_attempts" jsonschema:"default=3,minimum=1,description=Download attempts before a task is marked failed"`
		Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-image download timeout"`
	} `yaml:"images" json:"images" jsonschema:"description=Image mirroring configuration"`

	Retention struct {
		ItemDays int `yaml:"item_days" json:"item_days" jsonschema:"default=180,minimum=1,description=Days an entry is kept before reclamation"`
	} `yaml:"retention" json:"retention" jsonschema:"description=Retention configuration"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for store
	if cfg.Store.Timeout == 0 {
		cfg.Store.Timeout = 15 * time.Second
	}

	// set defaults for blob
	if cfg.Blob.Region == "" {
		cfg.Blob.Region = "auto"
	}

	// set defaults for schedule
	if cfg.Schedule.FeedInterval == 0 {
		cfg.Schedule.FeedInterval = time.Hour
	}
	if cfg.Schedule.RetryInterval == 0 {
		cfg.Schedule.RetryInterval = 2 * time.Hour
	}
	if cfg.Schedule.CleanupInterval == 0 {
		cfg.Schedule.CleanupInterval = 24 * time.Hour
	}
	if cfg.Schedule.DefaultFeedMins == 0 {
		cfg.Schedule.DefaultFeedMins = 30
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for feeds
	if cfg.Feeds.File == "" {
		cfg.Feeds.File = "feeds.json"
	}
	if cfg.Feeds.UserAgent == "" {
		cfg.Feeds.UserAgent = "collector/1.0"
	}
	if cfg.Feeds.Timeout == 0 {
		cfg.Feeds.Timeout = 30 * time.Second
	}

	// set defaults for images
	if cfg.Images.MaxAttempts == 0 {
		cfg.Images.MaxAttempts = 3
	}
	if cfg.Images.Timeout == 0 {
		cfg.Images.Timeout = 30 * time.Second
	}

	// set defaults for retention
	if cfg.Retention.ItemDays == 0 {
		cfg.Retention.ItemDays = 180
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Store.URL == "" {
		return fmt.Errorf("store.url is required")
	}

	if cfg.Blob.Endpoint == "" {
		return fmt.Errorf("blob.endpoint is required")
	}
	if cfg.Blob.Bucket == "" {
		return fmt.Errorf("blob.bucket is required")
	}
	if cfg.Blob.AccessKeyID == "" || cfg.Blob.SecretAccessKey == "" {
		return fmt.Errorf("blob credentials are required")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Images.MaxAttempts < 1 {
		return fmt.Errorf("images.max_attempts must be at least 1")
	}
	if cfg.Retention.ItemDays < 1 {
		return fmt.Errorf("retention.item_days must be at least 1 day")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	return nil
}
