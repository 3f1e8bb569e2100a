// Package channel provides a server-side broadcast channel for delivering
// real-time events to long-lived Server-Sent-Events (SSE) clients.
//
// It includes subscriber registration, event-name filtering, a bounded
// replay buffer for gapless reconnects via Last-Event-ID, and periodic
// keepalive pings.
//
// # Architecture
//
//   - Channel: owns the subscriber set, message history, and id assignment
//   - Connection: one subscribed stream with an optional event filter
//   - Handler: HTTP binding that adapts a ResponseWriter into a Stream
//
// # Usage
//
//	ch := channel.New(channel.Config{HistorySize: 100, PingInterval: 20 * time.Second}, nil)
//	handler := channel.NewHandler(ch)
//	router.GET("/events", handler.Gin())
//	ch.Publish(payload, "progress")
package channel
