package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SupportHeader advertises SSE streaming support to clients that probe for
// it before opening an event stream.
const SupportHeader = "X-SSE-Support"

// CapabilityConfig holds the streaming capability flag for a deployment.
type CapabilityConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// Capability returns a Gin middleware that advertises streaming support.
// When the flag is set it adds the support header and exposes it through
// CORS so browser clients can read it. It runs before any channel
// interaction and never touches the channel itself.
func Capability(cfg CapabilityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Enabled {
			c.Header(SupportHeader, "enabled")
			appendExposeHeader(c.Writer.Header(), SupportHeader)
		}
		c.Next()
	}
}

func appendExposeHeader(h http.Header, name string) {
	const key = "Access-Control-Expose-Headers"
	if cur := h.Get(key); cur != "" {
		h.Set(key, cur+", "+name)
		return
	}
	h.Set(key, name)
}
