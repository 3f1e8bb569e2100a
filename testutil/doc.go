// Package testutil provides shared test helpers: an in-memory Stream
// implementation that records the frames written to it, and small polling
// helpers for asynchronous assertions.
package testutil
