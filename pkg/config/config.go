// Package config loads replay configuration from the environment and an
// optional YAML file. Precedence is defaults, then file, then environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/merge"
	"gopkg.in/yaml.v3"
)

// Config holds replay configuration.
type Config struct {
	LogLevel      string    `yaml:"log_level"`
	DecodeWorkers int       `yaml:"decode_workers"`
	MaxEvents     int       `yaml:"max_events"`
	Merge         Merge     `yaml:"merge"`
	Storage       Storage   `yaml:"storage"`
	Telemetry     Telemetry `yaml:"telemetry"`
}

// Merge configures the merge engine.
type Merge struct {
	MaxConstituents int                      `yaml:"max_constituents"`
	Windows         map[string]time.Duration `yaml:"windows"`
	Rules           []merge.ExprRule         `yaml:"rules"`
}

// Storage selects and configures the snapshot persister.
type Storage struct {
	Type        string        `yaml:"type"` // "none" | "fs" | "s3" | "gcs" | "sqlite" | "postgres"
	DataDir     string        `yaml:"data_dir"`
	S3Bucket    string        `yaml:"s3_bucket"`
	S3Region    string        `yaml:"s3_region"`
	S3Endpoint  string        `yaml:"s3_endpoint"`
	Prefix      string        `yaml:"prefix"`
	GCSBucket   string        `yaml:"gcs_bucket"`
	DatabaseURL string        `yaml:"database_url"`
	RedisAddr   string        `yaml:"redis_addr"`
	RedisDB     int           `yaml:"redis_db"`
	RedisTTL    time.Duration `yaml:"redis_ttl"`
	// RedisPassword is only read from the environment.
	RedisPassword string `yaml:"-"`
}

// Telemetry configures OpenTelemetry export.
type Telemetry struct {
	Enabled    bool    `yaml:"enabled"`
	Endpoint   string  `yaml:"endpoint"`
	SampleRate float64 `yaml:"sample_rate"`
}

func defaults() *Config {
	return &Config{
		LogLevel: "INFO",
		Storage: Storage{
			Type:     "none",
			DataDir:  "data",
			S3Region: "us-east-1",
			RedisTTL: 24 * time.Hour,
		},
		Telemetry: Telemetry{
			Endpoint:   "localhost:4317",
			SampleRate: 1.0,
		},
	}
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := defaults()
	cfg.applyEnv()
	return cfg
}

// LoadFile loads a YAML file over the defaults and applies the
// environment on top.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.LogLevel, "JOURNAL_LOG_LEVEL")
	setInt(&c.DecodeWorkers, "JOURNAL_DECODE_WORKERS")
	setInt(&c.MaxEvents, "JOURNAL_MAX_EVENTS")
	setInt(&c.Merge.MaxConstituents, "JOURNAL_MERGE_MAX_CONSTITUENTS")

	setString(&c.Storage.Type, "SNAPSHOT_STORAGE_TYPE")
	setString(&c.Storage.DataDir, "DATA_DIR")
	setString(&c.Storage.S3Bucket, "SNAPSHOT_S3_BUCKET")
	setString(&c.Storage.S3Region, "AWS_REGION")
	setString(&c.Storage.S3Region, "SNAPSHOT_S3_REGION")
	setString(&c.Storage.S3Endpoint, "SNAPSHOT_S3_ENDPOINT")
	setString(&c.Storage.Prefix, "SNAPSHOT_PREFIX")
	setString(&c.Storage.GCSBucket, "SNAPSHOT_GCS_BUCKET")
	setString(&c.Storage.DatabaseURL, "DATABASE_URL")
	setString(&c.Storage.RedisAddr, "SNAPSHOT_REDIS_ADDR")
	setString(&c.Storage.RedisPassword, "SNAPSHOT_REDIS_PASSWORD")
	setInt(&c.Storage.RedisDB, "SNAPSHOT_REDIS_DB")

	if v := os.Getenv("OTEL_ENABLED"); v != "" {
		c.Telemetry.Enabled = v == "true"
	}
	setString(&c.Telemetry.Endpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
}

// SlogLevel maps LogLevel onto a slog level, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// MergeOptions builds the merge engine options. Expression rules that do
// not compile are rejected.
func (c *Config) MergeOptions() ([]merge.Option, error) {
	var opts []merge.Option
	for _, r := range c.Merge.Rules {
		rule, err := merge.CompileRule(r)
		if err != nil {
			return nil, err
		}
		opts = append(opts, merge.WithRule(rule))
	}
	for t, d := range c.Merge.Windows {
		opts = append(opts, merge.WithWindow(event.Type(t), d))
	}
	if c.Merge.MaxConstituents > 0 {
		opts = append(opts, merge.WithMaxConstituents(c.Merge.MaxConstituents))
	}
	return opts, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
