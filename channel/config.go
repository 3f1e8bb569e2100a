package channel

import (
	"fmt"
	"time"

	"github.com/kbukum/ssekit/validation"
)

// Config holds broadcast channel configuration.
type Config struct {
	// PingInterval is how often keepalive pings are written to idle
	// subscribers. Zero disables pings; through ApplyDefaults, zero selects
	// the default and a negative value disables pings.
	PingInterval time.Duration `yaml:"ping_interval" mapstructure:"ping_interval"`
	// MaxStreamDuration force-unsubscribes a connection after this long.
	// Zero means unbounded.
	MaxStreamDuration time.Duration `yaml:"max_stream_duration" mapstructure:"max_stream_duration"`
	// ClientRetry is the reconnect delay advertised to clients in the
	// stream preamble.
	ClientRetry time.Duration `yaml:"client_retry" mapstructure:"client_retry"`
	// StartID is the id assigned to the first published message.
	StartID int64 `yaml:"start_id" mapstructure:"start_id"`
	// HistorySize bounds the replay buffer. Zero keeps no history; through
	// ApplyDefaults, zero selects the default and a negative value keeps no
	// history.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`
	// Rewind is the default number of buffered messages replayed to a
	// subscriber that carries no Last-Event-ID.
	Rewind int `yaml:"rewind" mapstructure:"rewind" validate:"gte=0"`
}

// ApplyDefaults sets sensible default values for unset fields. The
// zero-meaningful knobs use a negative sentinel: ping_interval: -1 disables
// pings, history_size: -1 keeps no history.
func (c *Config) ApplyDefaults() {
	if c.PingInterval == 0 {
		c.PingInterval = 20 * time.Second
	} else if c.PingInterval < 0 {
		c.PingInterval = 0
	}
	if c.ClientRetry == 0 {
		c.ClientRetry = 3 * time.Second
	}
	if c.HistorySize == 0 {
		c.HistorySize = 500
	} else if c.HistorySize < 0 {
		c.HistorySize = 0
	}
	if c.StartID == 0 {
		c.StartID = 1
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.PingInterval < 0 {
		return fmt.Errorf("channel.ping_interval must be non-negative (got: %s)", c.PingInterval)
	}
	if c.MaxStreamDuration < 0 {
		return fmt.Errorf("channel.max_stream_duration must be non-negative (got: %s)", c.MaxStreamDuration)
	}
	if c.ClientRetry < 0 {
		return fmt.Errorf("channel.client_retry must be non-negative (got: %s)", c.ClientRetry)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("channel.history_size must be non-negative (got: %d)", c.HistorySize)
	}
	return nil
}
