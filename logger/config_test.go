package logger

import "testing"

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.ApplyDefaults()
	if c.Level != "info" || c.Format != "console" || c.Output != "stdout" {
		t.Errorf("defaults = %+v", c)
	}
	if !c.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	c := Config{Level: "debug", Format: "json"}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	c = Config{Level: "loud", Format: "json"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	c = Config{Level: "info", Format: "xml"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestWithComponentAndFields(t *testing.T) {
	l := NewDefault("test")
	if l == nil {
		t.Fatal("NewDefault returned nil")
	}

	cl := l.WithComponent("channel")
	if cl == nil || cl == l {
		t.Error("WithComponent should return a new logger")
	}
	fl := l.WithFields(map[string]interface{}{"k": "v"})
	if fl == nil || fl == l {
		t.Error("WithFields should return a new logger")
	}
}
