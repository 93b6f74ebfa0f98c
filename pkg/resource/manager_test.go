// pkg/resource/manager_test.go
package resource

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/logging"
)

func newTestManager(limit int, timeout time.Duration) *Manager {
	return NewManager(context.Background(), limit, timeout, logging.NewLoggerWithWriter(io.Discard))
}

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager(context.Background(), 4, 0, nil)
	defer m.Shutdown(context.Background())

	if m.shutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("Expected default shutdown timeout, got %v", m.shutdownTimeout)
	}
	if m.logger == nil {
		t.Error("Expected a logger")
	}
	if m.Count() != 0 {
		t.Errorf("Expected no goroutines, got %d", m.Count())
	}
}

func TestManager_GoLimit(t *testing.T) {
	m := newTestManager(2, time.Second)
	defer m.Shutdown(context.Background())

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		if err := m.Go("worker", func(ctx context.Context) {
			defer wg.Done()
			<-release
		}); err != nil {
			t.Fatalf("Expected no error for worker %d, got: %v", i, err)
		}
	}

	if err := m.Go("one-too-many", func(ctx context.Context) {}); err == nil {
		t.Error("Expected error when exceeding goroutine limit")
	}

	close(release)
	wg.Wait()
}

func TestManager_PanicRecovery(t *testing.T) {
	m := newTestManager(4, time.Second)

	done := make(chan struct{})
	if err := m.Go("panicking", func(ctx context.Context) {
		defer close(done)
		panic("test panic")
	}); err != nil {
		t.Fatalf("Expected no error starting goroutine, got: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Goroutine did not finish within timeout")
	}

	if err := m.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected clean shutdown after recovered panic, got: %v", err)
	}
}

func TestManager_ShutdownCancelsWorkers(t *testing.T) {
	m := newTestManager(4, time.Second)

	for i := 0; i < 3; i++ {
		if err := m.Go("poller", func(ctx context.Context) {
			<-ctx.Done()
		}); err != nil {
			t.Fatalf("Go failed: %v", err)
		}
	}

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if m.Count() != 0 {
		t.Errorf("Expected 0 goroutines after shutdown, got %d", m.Count())
	}
	if m.Context().Err() == nil {
		t.Error("Expected context to be cancelled")
	}

	if err := m.Go("late", func(ctx context.Context) {}); err == nil {
		t.Error("Expected error starting a goroutine after shutdown")
	}
	if err := m.Shutdown(context.Background()); err != nil {
		t.Errorf("Second shutdown should be a no-op, got: %v", err)
	}
}

func TestManager_ShutdownTimeout(t *testing.T) {
	m := newTestManager(4, 30*time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	if err := m.Go("stuck", func(ctx context.Context) {
		<-release
	}); err != nil {
		t.Fatalf("Go failed: %v", err)
	}

	if err := m.Shutdown(context.Background()); err == nil {
		t.Error("Expected timeout error for a goroutine that ignores cancellation")
	}
}
