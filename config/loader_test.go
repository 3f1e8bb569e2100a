package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type streamConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Channel struct {
		HistorySize  int           `yaml:"history_size" mapstructure:"history_size"`
		PingInterval time.Duration `yaml:"ping_interval" mapstructure:"ping_interval"`
	} `yaml:"channel" mapstructure:"channel"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
name: stream-svc
environment: staging
channel:
  history_size: 42
  ping_interval: 15s
`)

	var cfg streamConfig
	if err := LoadConfig("stream-svc", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "stream-svc" {
		t.Errorf("Name = %q, want %q", cfg.Name, "stream-svc")
	}
	if cfg.Environment != "staging" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "staging")
	}
	if cfg.Channel.HistorySize != 42 {
		t.Errorf("Channel.HistorySize = %d, want 42", cfg.Channel.HistorySize)
	}
	if cfg.Channel.PingInterval != 15*time.Second {
		t.Errorf("Channel.PingInterval = %v, want 15s", cfg.Channel.PingInterval)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
name: stream-svc
channel:
  history_size: 42
`)

	t.Setenv("CHANNEL_HISTORY_SIZE", "7")

	var cfg streamConfig
	if err := LoadConfig("stream-svc", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Channel.HistorySize != 7 {
		t.Errorf("Channel.HistorySize = %d, want env override 7", cfg.Channel.HistorySize)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "CHANNEL_HISTORY_SIZE=9\n")
	cfgFile := writeFile(t, dir, "config.yml", `
name: stream-svc
channel:
  history_size: 1
`)
	t.Cleanup(func() { os.Unsetenv("CHANNEL_HISTORY_SIZE") })

	var cfg streamConfig
	if err := LoadConfig("stream-svc", &cfg, WithConfigFile(cfgFile), WithEnvFile(envFile)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Channel.HistorySize != 9 {
		t.Errorf("Channel.HistorySize = %d, want .env value 9", cfg.Channel.HistorySize)
	}
}

func TestLoadConfigMissingFilesIsFine(t *testing.T) {
	var cfg streamConfig
	if err := LoadConfig("no-such-service", &cfg); err != nil {
		t.Errorf("LoadConfig without files should not error, got %v", err)
	}
}
