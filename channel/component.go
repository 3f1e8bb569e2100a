package channel

import (
	"context"
	"fmt"

	"github.com/kbukum/ssekit/component"
	"github.com/kbukum/ssekit/logger"
)

// Component wraps a Channel as a lifecycle-managed component. Register it
// with the component registry so shutdown closes the channel automatically.
type Component struct {
	ch   *Channel
	path string
}

// ensure Component satisfies component.Component and Describable.
var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates a channel component. The channel itself is live from
// construction; Start exists to satisfy the lifecycle contract.
func NewComponent(path string, cfg Config, log *logger.Logger) *Component {
	return &Component{
		ch:   New(cfg, log),
		path: path,
	}
}

// Channel returns the underlying Channel for publishing and subscription.
func (c *Component) Channel() *Channel { return c.ch }

// Name returns the component name.
func (c *Component) Name() string { return "channel" }

// Start is a no-op; the channel runs from construction.
func (c *Component) Start(_ context.Context) error { return nil }

// Stop closes the channel, disconnecting every subscriber.
func (c *Component) Stop(_ context.Context) error {
	c.ch.Close()
	return nil
}

// Health reports the channel's subscriber count.
func (c *Component) Health(_ context.Context) component.Health {
	return component.Health{
		Name:    c.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("%d subscribers connected", c.ch.SubscriberCount()),
	}
}

// Describe returns infrastructure summary info for startup display.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name: "Broadcast Channel",
		Type: "channel",
		Details: fmt.Sprintf("Path: %s history=%d rewind=%d",
			c.path, c.ch.cfg.HistorySize, c.ch.cfg.Rewind),
	}
}
