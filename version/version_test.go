package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("Version should never be empty")
	}
}

func TestShort(t *testing.T) {
	short := Short()
	if short == "" {
		t.Fatal("Short() returned empty string")
	}
	if !strings.HasPrefix(short, Get().Version) {
		t.Errorf("Short() = %q, want prefix %q", short, Get().Version)
	}
}
