package channel

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/ssekit/logger"
)

// Handler binds a Channel to HTTP transports. It adapts the response writer
// into the channel's Stream abstraction and drives the connection lifecycle
// from the request context.
type Handler struct {
	ch  *Channel
	log *logger.Logger
}

// NewHandler creates an HTTP handler for the given channel.
func NewHandler(ch *Channel) *Handler {
	return &Handler{ch: ch, log: ch.log}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ServeStream(h.ch, w, r)
}

// Gin returns a Gin handler serving the channel.
func (h *Handler) Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ServeStream(h.ch, c.Writer, c.Request)
	}
}

// ServeStream subscribes the request to the channel and streams events until
// the client disconnects, the connection is unsubscribed, or the stream's
// max duration elapses. Options derived from the request (Last-Event-ID
// header, "events" query filter) are applied after any explicit opts.
func ServeStream(ch *Channel, w http.ResponseWriter, r *http.Request, opts ...SubscribeOption) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		ch.log.Error("streaming not supported by response writer", map[string]interface{}{
			"remote_addr": r.RemoteAddr,
		})
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	// SSE connections are long-lived; the server's WriteTimeout must not
	// apply to them.
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		ch.log.Warn("could not disable write deadline", map[string]interface{}{
			"remote_addr": r.RemoteAddr,
			"error":       err.Error(),
		})
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // disable nginx buffering
	w.WriteHeader(http.StatusOK)

	opts = append(opts, requestOptions(r)...)

	conn := ch.Subscribe(&httpStream{w: w, flusher: flusher, remote: r.RemoteAddr}, opts...)
	if conn == nil {
		return
	}
	defer ch.Unsubscribe(conn)

	conn.Run(r.Context())
}

// requestOptions derives subscription options from the request: the
// Last-Event-ID reconnect header and the comma-separated "events" query
// parameter. A malformed Last-Event-ID is treated as absent, which falls
// back to the channel's configured rewind.
func requestOptions(r *http.Request) []SubscribeOption {
	var opts []SubscribeOption

	if raw := r.Header.Get("Last-Event-ID"); raw != "" {
		if id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			opts = append(opts, WithLastEventID(id))
		}
	}

	if raw := r.URL.Query().Get("events"); raw != "" {
		var filter []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				filter = append(filter, part)
			}
		}
		if len(filter) > 0 {
			opts = append(opts, WithEventFilter(filter...))
		}
	}

	return opts
}

// httpStream adapts an http.ResponseWriter to the Stream interface. Close
// is a no-op: the response ends when the handler returns, which the pump
// loop guarantees once the connection is finished.
type httpStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	remote  string
}

func (s *httpStream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *httpStream) Flush() {
	s.flusher.Flush()
}

func (s *httpStream) Close() error {
	return nil
}

func (s *httpStream) RemoteAddr() string {
	return s.remote
}
