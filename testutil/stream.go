package testutil

import (
	"errors"
	"strings"
	"sync"
)

// ErrStreamClosed is returned by writes after the stream fails or closes.
var ErrStreamClosed = errors.New("stream closed")

// RecordingStream is an in-memory channel.Stream implementation. It records
// everything written to it and can be told to fail writes, which is how
// client disconnects are simulated in tests.
type RecordingStream struct {
	mu      sync.Mutex
	buf     strings.Builder
	flushes int
	closed  bool
	failed  bool
	remote  string
}

// NewRecordingStream creates a recording stream with the given remote address.
func NewRecordingStream(remote string) *RecordingStream {
	return &RecordingStream{remote: remote}
}

func (s *RecordingStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed || s.closed {
		return 0, ErrStreamClosed
	}
	return s.buf.Write(p)
}

func (s *RecordingStream) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
}

func (s *RecordingStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *RecordingStream) RemoteAddr() string {
	return s.remote
}

// Fail makes all subsequent writes return an error, simulating a client
// that has gone away.
func (s *RecordingStream) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = true
}

// Contents returns everything written to the stream so far.
func (s *RecordingStream) Contents() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Flushes returns how many times Flush was called.
func (s *RecordingStream) Flushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

// Closed reports whether Close was called.
func (s *RecordingStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
