package channel

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/ssekit/logger"
)

// Channel is a broadcast channel fanning published events out to all
// subscribed connections. All mutations of the id counter, subscriber set,
// and history buffer are serialized behind a single mutex; writes to
// individual streams happen outside it and never block each other.
type Channel struct {
	cfg Config
	log *logger.Logger
	met *metricsSet

	mu       sync.Mutex
	nextID   int64
	subs     map[*Connection]struct{}
	hist     history
	active   bool
	pingDone chan struct{}
}

// New creates a Channel and, if configured, starts its keepalive ticker.
// The channel is live from construction until Close. A nil logger falls
// back to the global one.
func New(cfg Config, log *logger.Logger) *Channel {
	if log == nil {
		log = logger.WithComponent("channel")
	}
	if cfg.ClientRetry <= 0 {
		cfg.ClientRetry = 3 * time.Second
	}

	c := &Channel{
		cfg:    cfg,
		log:    log,
		met:    newMetricsSet(log),
		nextID: cfg.StartID,
		subs:   make(map[*Connection]struct{}),
		hist:   history{limit: cfg.HistorySize},
		active: true,
	}

	if cfg.PingInterval > 0 {
		c.pingDone = make(chan struct{})
		go c.pingLoop()
	}

	return c
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscribeOptions)

type subscribeOptions struct {
	id        string
	filter    []string
	lastID    int64
	hasLastID bool
}

// WithEventFilter restricts the subscription to events whose name equals or
// glob-matches one of the given entries. Unnamed messages and pings are
// always delivered.
func WithEventFilter(events ...string) SubscribeOption {
	return func(o *subscribeOptions) {
		o.filter = append(o.filter, events...)
	}
}

// WithLastEventID resumes from the given last-seen message id, replaying
// everything published after it that is still buffered.
func WithLastEventID(id int64) SubscribeOption {
	return func(o *subscribeOptions) {
		o.lastID = id
		o.hasLastID = true
	}
}

// WithConnectionID overrides the generated connection identifier.
func WithConnectionID(id string) SubscribeOption {
	return func(o *subscribeOptions) {
		o.id = id
	}
}

// Publish assigns the next message id, renders the wire block once, appends
// it to history, and fans it out to every matching subscriber. Individual
// delivery failures are logged and never surface to the caller. Returns the
// assigned id; ok is false when the channel is closed and nothing happened.
func (c *Channel) Publish(data any, eventName string) (id int64, ok bool) {
	payload := encodePayload(data)

	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		c.log.Warn("publish on closed channel ignored", map[string]interface{}{
			"event": eventName,
		})
		return 0, false
	}

	id = c.nextID
	c.nextID++

	msg := Message{ID: id, Event: eventName, Rendered: renderMessage(id, eventName, payload)}
	c.hist.add(msg)

	targets := make([]*Connection, 0, len(c.subs))
	for conn := range c.subs {
		if conn.matches(eventName) {
			targets = append(targets, conn)
		}
	}
	c.mu.Unlock()

	frame := []byte(msg.Rendered)
	dropped := 0
	for _, conn := range targets {
		if !conn.enqueue(frame) {
			dropped++
		}
	}
	c.met.recordPublish(eventName, len(targets), dropped)

	return id, true
}

// Ping writes a keepalive block to every subscriber. It assigns no id and
// leaves history untouched. With zero subscribers it does nothing, so an
// idle channel's ticker never grows any state. Returns whether a ping was
// written to at least one connection.
func (c *Channel) Ping() bool {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		c.log.Debug("ping on closed channel ignored")
		return false
	}
	if len(c.subs) == 0 {
		c.mu.Unlock()
		return false
	}
	targets := make([]*Connection, 0, len(c.subs))
	for conn := range c.subs {
		targets = append(targets, conn)
	}
	c.mu.Unlock()

	frame := []byte(pingFrame)
	for _, conn := range targets {
		conn.enqueue(frame)
	}
	c.met.recordPing()
	return true
}

// Subscribe registers a new connection on the given stream. It writes the
// stream preamble, replays buffered history per the subscription's
// Last-Event-ID (or the configured default rewind), and arms the optional
// max-duration timer. The returned connection is live: its Run method must
// be called by the transport goroutine to pump subsequent messages.
// Returns nil when the channel is closed.
func (c *Channel) Subscribe(stream Stream, opts ...SubscribeOption) *Connection {
	var so subscribeOptions
	for _, opt := range opts {
		opt(&so)
	}
	if so.id == "" {
		so.id = uuid.NewString()
	}

	conn := &Connection{
		id:     so.id,
		stream: stream,
		filter: so.filter,
		events: make(chan []byte, sendBuffer),
		log:    c.log,
	}

	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		c.log.Warn("subscribe on closed channel rejected", map[string]interface{}{
			"remote_addr": stream.RemoteAddr(),
		})
		return nil
	}

	// With a last-seen id the replay is exactly the buffered messages past
	// it; the count-based tail applies only to the default rewind.
	matches := func(m Message) bool { return conn.matches(m.Event) }
	var replay []Message
	if so.hasLastID {
		replay = c.hist.after(so.lastID, matches)
	} else {
		replay = c.hist.tail(c.cfg.Rewind, matches)
	}

	// Registering before the replay is written means concurrent publishes
	// queue up behind it; the wire order stays preamble, replay, live.
	c.subs[conn] = struct{}{}
	c.mu.Unlock()

	if c.cfg.MaxStreamDuration > 0 {
		conn.arm(c.cfg.MaxStreamDuration, func() {
			c.log.Debug("max stream duration reached", map[string]interface{}{
				"connection_id": conn.id,
			})
			c.Unsubscribe(conn)
		})
	}

	if err := conn.writeDirect(renderPreamble(c.cfg.ClientRetry)); err != nil {
		c.log.Warn("preamble write failed", map[string]interface{}{
			"connection_id": conn.id,
			"error":         err.Error(),
		})
		c.Unsubscribe(conn)
		return conn
	}
	stream.Flush()

	for _, m := range replay {
		if err := conn.writeDirect(m.Rendered); err != nil {
			c.log.Warn("replay write failed", map[string]interface{}{
				"connection_id": conn.id,
				"message_id":    m.ID,
				"error":         err.Error(),
			})
			c.Unsubscribe(conn)
			return conn
		}
	}
	if len(replay) > 0 {
		stream.Flush()
	}

	c.met.recordSubscribe(len(replay))
	c.log.Debug("connection subscribed", map[string]interface{}{
		"connection_id": conn.id,
		"remote_addr":   stream.RemoteAddr(),
		"replayed":      len(replay),
		"filter":        conn.filter,
	})

	return conn
}

// Unsubscribe removes the connection from the subscriber set and ends its
// stream. Safe to call multiple times, from timer callbacks, transport
// teardown, or explicit API calls; whichever fires first wins.
func (c *Channel) Unsubscribe(conn *Connection) {
	if conn == nil {
		return
	}

	c.mu.Lock()
	_, registered := c.subs[conn]
	if registered {
		delete(c.subs, conn)
	}
	c.mu.Unlock()

	conn.finish()

	if registered {
		c.met.recordUnsubscribe()
		c.log.Debug("connection unsubscribed", map[string]interface{}{
			"connection_id": conn.id,
		})
	}
}

// Close ends every subscriber's stream, clears the subscriber set and
// history, stops the keepalive ticker, and marks the channel inactive.
// Later Publish/Subscribe calls are logged and ignored rather than
// panicking, so a misbehaving producer degrades instead of crashing.
func (c *Channel) Close() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false

	conns := make([]*Connection, 0, len(c.subs))
	for conn := range c.subs {
		conns = append(conns, conn)
	}
	c.subs = make(map[*Connection]struct{})
	c.hist.clear()

	if c.pingDone != nil {
		close(c.pingDone)
	}
	c.mu.Unlock()

	for _, conn := range conns {
		conn.finish()
	}
	c.met.recordClose(len(conns))

	c.log.Info("channel closed", map[string]interface{}{
		"disconnected": len(conns),
	})
}

// SubscriberCount returns the number of currently subscribed connections.
func (c *Channel) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// ListClients returns a snapshot mapping client address to the number of
// active connections from that address.
func (c *Channel) ListClients() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	clients := make(map[string]int, len(c.subs))
	for conn := range c.subs {
		clients[conn.RemoteAddr()]++
	}
	return clients
}

// HistorySize returns the current number of buffered messages.
func (c *Channel) HistorySize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hist.size()
}

func (c *Channel) pingLoop() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.pingDone:
			return
		case <-ticker.C:
			c.Ping()
		}
	}
}
