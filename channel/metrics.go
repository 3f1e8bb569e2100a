package channel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/ssekit/logger"
	"github.com/kbukum/ssekit/observability"
)

// metricsSet holds the channel's OpenTelemetry instruments. Instrument
// creation failures disable metrics for the channel instead of failing
// construction; all record methods are nil-safe.
type metricsSet struct {
	publishTotal metric.Int64Counter
	pingTotal    metric.Int64Counter
	replayTotal  metric.Int64Counter
	dropTotal    metric.Int64Counter
	subscribers  metric.Int64UpDownCounter
}

func newMetricsSet(log *logger.Logger) *metricsSet {
	meter := observability.Meter("github.com/kbukum/ssekit/channel")

	var firstErr error
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return c
	}

	m := &metricsSet{
		publishTotal: counter("channel.publish.total", "Total messages published"),
		pingTotal:    counter("channel.ping.total", "Total keepalive pings written"),
		replayTotal:  counter("channel.replay.total", "Total messages replayed on subscribe"),
		dropTotal:    counter("channel.drop.total", "Messages dropped on slow connections"),
	}

	var err error
	m.subscribers, err = meter.Int64UpDownCounter("channel.subscribers",
		metric.WithDescription("Currently subscribed connections"),
	)
	if err != nil && firstErr == nil {
		firstErr = err
	}

	if firstErr != nil {
		log.Warn("channel metrics disabled", map[string]interface{}{
			"error": firstErr.Error(),
		})
		return nil
	}
	return m
}

func (m *metricsSet) recordPublish(eventName string, delivered, dropped int) {
	if m == nil {
		return
	}
	ctx := context.Background()
	m.publishTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", eventName),
	))
	if dropped > 0 {
		m.dropTotal.Add(ctx, int64(dropped))
	}
}

func (m *metricsSet) recordPing() {
	if m == nil {
		return
	}
	m.pingTotal.Add(context.Background(), 1)
}

func (m *metricsSet) recordSubscribe(replayed int) {
	if m == nil {
		return
	}
	ctx := context.Background()
	m.subscribers.Add(ctx, 1)
	if replayed > 0 {
		m.replayTotal.Add(ctx, int64(replayed))
	}
}

func (m *metricsSet) recordUnsubscribe() {
	if m == nil {
		return
	}
	m.subscribers.Add(context.Background(), -1)
}

func (m *metricsSet) recordClose(disconnected int) {
	if m == nil {
		return
	}
	if disconnected > 0 {
		m.subscribers.Add(context.Background(), int64(-disconnected))
	}
}
