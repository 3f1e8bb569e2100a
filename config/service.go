package config

import "github.com/kbukum/ssekit/logger"

// ServiceConfig is the standard embeddable service configuration. Service
// config structs embed it by value so the promoted methods satisfy the
// bootstrap Config interface:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Channel channel.Config `yaml:"channel" mapstructure:"channel"`
//	}
type ServiceConfig struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`

	Version string        `yaml:"version" mapstructure:"version"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig returns the embedded service configuration.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig { return c }

// ApplyDefaults applies default values to service configuration.
func (c *ServiceConfig) ApplyDefaults() {
	c.BaseConfig.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.Version == "" {
		c.Version = "dev"
	}
	if c.Debug && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}
}

// Validate validates service configuration.
func (c *ServiceConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
