package channel

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/ssekit/logger"
)

// sendBuffer is the per-connection queue depth. A consumer that falls this
// far behind starts losing live messages rather than stalling the channel.
const sendBuffer = 256

// Connection is a handle representing one subscribed stream. It is created
// by Channel.Subscribe, owned by the channel for its lifetime, and released
// exactly once by Unsubscribe.
type Connection struct {
	id     string
	stream Stream
	filter []string
	events chan []byte
	log    *logger.Logger

	mu     sync.Mutex
	closed bool
	once   sync.Once
	timer  *time.Timer
}

// ID returns the connection's unique identifier.
func (cn *Connection) ID() string {
	return cn.id
}

// RemoteAddr returns the peer address of the underlying stream.
func (cn *Connection) RemoteAddr() string {
	return cn.stream.RemoteAddr()
}

// matches reports whether this connection should receive a message with the
// given event name. Unnamed messages are delivered to every connection;
// named ones must pass the filter.
func (cn *Connection) matches(eventName string) bool {
	return eventName == "" || matchEvent(cn.filter, eventName)
}

// enqueue offers a rendered frame to the connection's send queue without
// blocking. Returns false if the connection is closed or the queue is full.
func (cn *Connection) enqueue(frame []byte) bool {
	cn.mu.Lock()
	defer cn.mu.Unlock()
	if cn.closed {
		return false
	}
	select {
	case cn.events <- frame:
		return true
	default:
		cn.log.Warn("connection queue full, dropping message", map[string]interface{}{
			"connection_id": cn.id,
			"remote_addr":   cn.RemoteAddr(),
		})
		return false
	}
}

// arm starts the max-duration timer. The timer field is only touched under
// the connection mutex so a concurrent finish either sees the armed timer
// or prevents arming altogether.
func (cn *Connection) arm(d time.Duration, fire func()) {
	cn.mu.Lock()
	defer cn.mu.Unlock()
	if cn.closed {
		return
	}
	cn.timer = time.AfterFunc(d, fire)
}

// writeDirect writes to the stream synchronously. Only valid before Run has
// started, i.e. during the subscribe preamble/replay phase.
func (cn *Connection) writeDirect(s string) error {
	_, err := cn.stream.Write([]byte(s))
	return err
}

// finish tears the connection down: it stops the max-duration timer, closes
// the send queue so Run returns, and closes the underlying stream. Safe to
// call any number of times.
func (cn *Connection) finish() {
	cn.once.Do(func() {
		cn.mu.Lock()
		cn.closed = true
		close(cn.events)
		timer := cn.timer
		cn.mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		if err := cn.stream.Close(); err != nil {
			cn.log.Debug("stream close failed", map[string]interface{}{
				"connection_id": cn.id,
				"error":         err.Error(),
			})
		}
	})
}

// Run pumps queued frames to the stream until the context is canceled, the
// connection is unsubscribed, or a write fails terminally. The transport
// layer calls this on the goroutine serving the stream; a deferred
// Unsubscribe on the same goroutine completes the lifecycle.
func (cn *Connection) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			cn.log.Debug("stream context done", map[string]interface{}{
				"connection_id": cn.id,
				"reason":        ctx.Err().Error(),
			})
			return

		case frame, ok := <-cn.events:
			if !ok {
				return
			}
			if _, err := cn.stream.Write(frame); err != nil {
				cn.log.Warn("stream write failed", map[string]interface{}{
					"connection_id": cn.id,
					"remote_addr":   cn.RemoteAddr(),
					"error":         err.Error(),
				})
				return
			}
			cn.stream.Flush()
		}
	}
}
