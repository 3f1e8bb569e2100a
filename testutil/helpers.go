package testutil

import (
	"strings"
	"testing"
	"time"
)

// Eventually polls the condition until it returns true or the timeout
// elapses, failing the test on timeout.
func Eventually(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v: %s", timeout, msg)
}

// WaitForContents polls the stream until its contents contain want, failing
// the test on timeout.
func WaitForContents(t *testing.T, s *RecordingStream, want string, timeout time.Duration) {
	t.Helper()
	Eventually(t, timeout, func() bool {
		return strings.Contains(s.Contents(), want)
	}, "stream did not receive "+want)
}
