package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/ssekit/channel"
)

// Clients returns a handler that reports the channel's connected clients:
// total subscriber count plus a per-address connection count snapshot.
func Clients(ch *channel.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subscribers": ch.SubscriberCount(),
			"clients":     ch.ListClients(),
		})
	}
}
