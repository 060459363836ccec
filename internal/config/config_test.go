package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "METRICS_PATH", "COLLECT_INTERVAL", "LOG_LEVEL",
	"SOURCE", "REPORT_DIR", "TARGET_DISKS", "IGNORE_PATTERNS", "WORKERS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		// t.Setenv restores the previous value when the test ends
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "7070")
	t.Setenv("METRICS_PATH", "/env-metrics")
	t.Setenv("COLLECT_INTERVAL", "90s")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SOURCE", "files")
	t.Setenv("REPORT_DIR", "/var/tmp/captures")
	t.Setenv("TARGET_DISKS", "/dev/sda, /dev/sdb,")
	t.Setenv("WORKERS", "8")

	config := New()

	if config.Port != "7070" {
		t.Errorf("Expected port 7070 from env, got %s", config.Port)
	}
	if config.MetricsPath != "/env-metrics" {
		t.Errorf("Expected metrics path /env-metrics from env, got %s", config.MetricsPath)
	}
	if config.CollectInterval != 90*time.Second {
		t.Errorf("Expected collect interval 90s from env, got %v", config.CollectInterval)
	}
	if config.LogLevel != "warn" {
		t.Errorf("Expected log level warn from env, got %s", config.LogLevel)
	}
	if config.Source != SourceFiles {
		t.Errorf("Expected source files from env, got %s", config.Source)
	}
	if config.ReportDir != "/var/tmp/captures" {
		t.Errorf("Expected report dir from env, got %s", config.ReportDir)
	}
	if len(config.TargetDisks) != 2 || config.TargetDisks[0] != "/dev/sda" || config.TargetDisks[1] != "/dev/sdb" {
		t.Errorf("Expected target disks [/dev/sda /dev/sdb], got %v", config.TargetDisks)
	}
	if config.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", config.Workers)
	}
}

func TestConfigDefaults(t *testing.T) {
	clearEnv(t)

	config := New()

	if config.Port != "9100" {
		t.Errorf("Expected default port 9100, got %s", config.Port)
	}
	if config.MetricsPath != "/metrics" {
		t.Errorf("Expected default metrics path /metrics, got %s", config.MetricsPath)
	}
	if config.CollectInterval != 30*time.Second {
		t.Errorf("Expected default collect interval 30s, got %v", config.CollectInterval)
	}
	if config.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", config.LogLevel)
	}
	if config.Source != SourceSmartctl {
		t.Errorf("Expected default source smartctl, got %s", config.Source)
	}
	if config.Workers != 4 {
		t.Errorf("Expected default 4 workers, got %d", config.Workers)
	}
	if len(config.TargetDisks) != 0 || len(config.IgnorePatterns) != 0 {
		t.Errorf("Expected no disk filters, got %v / %v", config.TargetDisks, config.IgnorePatterns)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadOverlaysEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "exporter.yaml")
	content := `
log_level: debug
collect_interval: 45s
source: files
report_dir: /srv/insights
ignore_patterns:
  - /dev/loop
  - /dev/ram
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Port != "5000" {
		t.Errorf("Expected port 5000 from env (not in file), got %s", config.Port)
	}
	if config.LogLevel != "debug" {
		t.Errorf("Expected log level debug from file (not error from env), got %s", config.LogLevel)
	}
	if config.CollectInterval != 45*time.Second {
		t.Errorf("Expected collect interval 45s, got %v", config.CollectInterval)
	}
	if config.ReportDir != "/srv/insights" {
		t.Errorf("Expected report dir /srv/insights, got %s", config.ReportDir)
	}
	if len(config.IgnorePatterns) != 2 || config.IgnorePatterns[1] != "/dev/ram" {
		t.Errorf("Expected two ignore patterns, got %v", config.IgnorePatterns)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("source: [files"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for invalid YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("source: megacli\n"), 0o644)
	if _, err := Load(invalid); err == nil {
		t.Error("Expected validation error for unknown source")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"files source", func(c *Config) { c.Source = SourceFiles }, false},
		{"unknown source", func(c *Config) { c.Source = "storcli" }, true},
		{"zero interval", func(c *Config) { c.CollectInterval = 0 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"relative metrics path", func(c *Config) { c.MetricsPath = "metrics" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			tc.mutate(c)
			err := c.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	testCases := []struct {
		envValue string
		expected time.Duration
		name     string
	}{
		{"30s", 30 * time.Second, "duration string"},
		{"60", 60 * time.Second, "seconds as integer"},
		{"2m", 2 * time.Minute, "minutes"},
		{"1h", 1 * time.Hour, "hours"},
		{"invalid", 30 * time.Second, "invalid value falls back to default"},
		{"", 30 * time.Second, "empty value falls back to default"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tc.envValue)

			result := getEnvDuration("TEST_DURATION", 30*time.Second)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v for input '%s'", tc.expected, result, tc.envValue)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	testCases := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"/dev/sda", []string{"/dev/sda"}},
		{" /dev/sda , /dev/sdb ", []string{"/dev/sda", "/dev/sdb"}},
		{",,", nil},
	}

	for _, tc := range testCases {
		result := SplitList(tc.input)
		if len(result) != len(tc.expected) {
			t.Errorf("SplitList(%q) = %v, expected %v", tc.input, result, tc.expected)
			continue
		}
		for i := range result {
			if result[i] != tc.expected[i] {
				t.Errorf("SplitList(%q) = %v, expected %v", tc.input, result, tc.expected)
			}
		}
	}
}
