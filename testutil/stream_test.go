package testutil

import "testing"

func TestRecordingStream(t *testing.T) {
	s := NewRecordingStream("10.0.0.1:1234")

	if s.RemoteAddr() != "10.0.0.1:1234" {
		t.Errorf("RemoteAddr() = %q", s.RemoteAddr())
	}

	if _, err := s.Write([]byte("data: x\n\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	s.Flush()
	if s.Contents() != "data: x\n\n" {
		t.Errorf("Contents() = %q", s.Contents())
	}
	if s.Flushes() != 1 {
		t.Errorf("Flushes() = %d, want 1", s.Flushes())
	}

	s.Fail()
	if _, err := s.Write([]byte("more")); err == nil {
		t.Error("Write after Fail should error")
	}
	if s.Contents() != "data: x\n\n" {
		t.Error("failed writes must not alter contents")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}
}
