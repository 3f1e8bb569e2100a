package channel

import "io"

// Stream is the transport-owned handle a Connection writes to. The channel
// treats it as an opaque one-way pipe: it never reads, and it relies on the
// transport layer to drive teardown through the Connection lifecycle.
type Stream interface {
	io.Writer

	// Flush pushes any buffered bytes to the client immediately.
	Flush()

	// Close ends the underlying transport stream. Implementations must
	// tolerate being called more than once.
	Close() error

	// RemoteAddr identifies the peer, used for diagnostics only.
	RemoteAddr() string
}
