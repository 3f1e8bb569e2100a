package auth

import (
	"time"

	"github.com/kbukum/ssekit/validation"
)

// Config holds JWT token service configuration.
type Config struct {
	// Secret is the HMAC signing secret.
	Secret string `yaml:"secret" mapstructure:"secret" validate:"required,min=16"`
	// Issuer is set on generated tokens and enforced during parsing when
	// non-empty.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	// TokenTTL is the lifetime of generated tokens.
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
}

// ApplyDefaults applies default values to auth configuration.
func (c *Config) ApplyDefaults() {
	if c.TokenTTL == 0 {
		c.TokenTTL = time.Hour
	}
}

// Validate validates auth configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
