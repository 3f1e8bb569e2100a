package component

import (
	"context"
	"fmt"
	"testing"
)

type fakeComponent struct {
	name     string
	startErr error
	stopErr  error
	status   HealthStatus

	startOrder *[]string
	stopOrder  *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(ctx context.Context) error {
	if f.startOrder != nil {
		*f.startOrder = append(*f.startOrder, f.name)
	}
	return f.startErr
}

func (f *fakeComponent) Stop(ctx context.Context) error {
	if f.stopOrder != nil {
		*f.stopOrder = append(*f.stopOrder, f.name)
	}
	return f.stopErr
}

func (f *fakeComponent) Health(ctx context.Context) Health {
	status := f.status
	if status == "" {
		status = StatusHealthy
	}
	return Health{Name: f.name, Status: status}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&fakeComponent{name: "a"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(&fakeComponent{name: "a"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestStartStopOrder(t *testing.T) {
	r := NewRegistry()
	var started, stopped []string
	for _, name := range []string{"first", "second", "third"} {
		r.Register(&fakeComponent{name: name, startOrder: &started, stopOrder: &stopped})
	}

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if fmt.Sprint(started) != "[first second third]" {
		t.Errorf("start order = %v", started)
	}

	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if fmt.Sprint(stopped) != "[third second first]" {
		t.Errorf("stop order = %v, want reverse of registration", stopped)
	}
}

func TestStartAllStopsOnError(t *testing.T) {
	r := NewRegistry()
	var started []string
	r.Register(&fakeComponent{name: "ok", startOrder: &started})
	r.Register(&fakeComponent{name: "bad", startErr: fmt.Errorf("boom"), startOrder: &started})
	r.Register(&fakeComponent{name: "never", startOrder: &started})

	if err := r.StartAll(context.Background()); err == nil {
		t.Fatal("expected StartAll error")
	}
	if fmt.Sprint(started) != "[ok bad]" {
		t.Errorf("started = %v, later components must not start after a failure", started)
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	r := NewRegistry()
	var stopped []string
	r.Register(&fakeComponent{name: "never-started", stopOrder: &stopped})

	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(stopped) != 0 {
		t.Errorf("stopped = %v, unstarted components must not be stopped", stopped)
	}
}

func TestHealthAllAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeComponent{name: "a"})
	r.Register(&fakeComponent{name: "b", status: StatusDegraded})

	health := r.HealthAll(context.Background())
	if len(health) != 2 {
		t.Fatalf("HealthAll returned %d results, want 2", len(health))
	}
	if health[1].Status != StatusDegraded {
		t.Errorf("health[1].Status = %q, want %q", health[1].Status, StatusDegraded)
	}

	if r.Get("a") == nil {
		t.Error("Get(a) = nil, want component")
	}
	if r.Get("missing") != nil {
		t.Error("Get(missing) should be nil")
	}
	if len(r.All()) != 2 {
		t.Errorf("All() returned %d components, want 2", len(r.All()))
	}
}
