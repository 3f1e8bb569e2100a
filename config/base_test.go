package config

import "testing"

func TestBaseConfigDefaults(t *testing.T) {
	var c BaseConfig
	c.ApplyDefaults()
	if c.Environment != "development" {
		t.Errorf("Environment = %q, want development", c.Environment)
	}
	if !c.Debug {
		t.Error("Debug should default to true in development")
	}
}

func TestBaseConfigValidate(t *testing.T) {
	c := BaseConfig{Name: "svc", Environment: "production"}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	c = BaseConfig{Environment: "production"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing name")
	}

	c = BaseConfig{Name: "svc", Environment: "qa"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown environment")
	}
}

func TestServiceConfigDefaults(t *testing.T) {
	c := ServiceConfig{BaseConfig: BaseConfig{Name: "svc"}}
	c.ApplyDefaults()

	if c.Version != "dev" {
		t.Errorf("Version = %q, want dev", c.Version)
	}
	// development implies debug, which bumps the log level
	if c.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", c.Logging.Level)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
