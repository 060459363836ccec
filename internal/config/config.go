package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Report sources
const (
	SourceFiles    = "files"
	SourceSmartctl = "smartctl"
)

// Config holds the application configuration
type Config struct {
	Port            string        `yaml:"port"`
	MetricsPath     string        `yaml:"metrics_path"`
	CollectInterval time.Duration `yaml:"collect_interval"`
	LogLevel        string        `yaml:"log_level"`
	Source          string        `yaml:"source"`
	ReportDir       string        `yaml:"report_dir"`
	TargetDisks     []string      `yaml:"target_disks"`
	IgnorePatterns  []string      `yaml:"ignore_patterns"`
	Workers         int           `yaml:"workers"`
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		Port:            getEnv("PORT", "9100"),
		MetricsPath:     getEnv("METRICS_PATH", "/metrics"),
		CollectInterval: getEnvDuration("COLLECT_INTERVAL", 30*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Source:          getEnv("SOURCE", SourceSmartctl),
		ReportDir:       getEnv("REPORT_DIR", "."),
		TargetDisks:     getEnvList("TARGET_DISKS"),
		IgnorePatterns:  getEnvList("IGNORE_PATTERNS"),
		Workers:         getEnvInt("WORKERS", 4),
	}
}

// Load creates a configuration from the environment and overlays the YAML
// file at path. Fields absent from the file keep their environment values.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	cfg.merge(&file)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies the non-zero fields of other into c
func (c *Config) merge(other *Config) {
	if other.Port != "" {
		c.Port = other.Port
	}
	if other.MetricsPath != "" {
		c.MetricsPath = other.MetricsPath
	}
	if other.CollectInterval != 0 {
		c.CollectInterval = other.CollectInterval
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Source != "" {
		c.Source = other.Source
	}
	if other.ReportDir != "" {
		c.ReportDir = other.ReportDir
	}
	if len(other.TargetDisks) > 0 {
		c.TargetDisks = other.TargetDisks
	}
	if len(other.IgnorePatterns) > 0 {
		c.IgnorePatterns = other.IgnorePatterns
	}
	if other.Workers != 0 {
		c.Workers = other.Workers
	}
}

// Validate checks that the configuration can be used to start the exporter
func (c *Config) Validate() error {
	switch c.Source {
	case SourceFiles, SourceSmartctl:
	default:
		return fmt.Errorf("unknown source %q (expected %s or %s)", c.Source, SourceFiles, SourceSmartctl)
	}
	if c.CollectInterval <= 0 {
		return fmt.Errorf("collect interval must be positive, got %s", c.CollectInterval)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("metrics path must start with /, got %q", c.MetricsPath)
	}
	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated environment variable, dropping empty
// entries and surrounding spaces.
func getEnvList(key string) []string {
	return SplitList(os.Getenv(key))
}

// SplitList splits a comma separated list such as "/dev/sda, /dev/sdb"
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
