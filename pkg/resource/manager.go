// pkg/resource/manager.go
package resource

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// DefaultShutdownTimeout bounds how long Shutdown waits for workers.
const DefaultShutdownTimeout = 2 * time.Second

// Manager tracks the frontend's background goroutines (input pollers,
// signal watchers) so they can be cancelled and awaited on exit.
type Manager struct {
	maxGoroutines   int64
	shutdownTimeout time.Duration

	goroutineCount int64

	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	stopped bool
	logger  *logging.Logger
}

// NewManager creates a manager that allows at most maxGoroutines tracked
// goroutines. A non-positive shutdownTimeout uses DefaultShutdownTimeout.
func NewManager(parent context.Context, maxGoroutines int, shutdownTimeout time.Duration, logger *logging.Logger) *Manager {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	if logger == nil {
		logger = logging.NewLogger()
	}
	ctx, cancel := context.WithCancel(parent)

	return &Manager{
		maxGoroutines:   int64(maxGoroutines),
		shutdownTimeout: shutdownTimeout,
		ctx:             ctx,
		cancel:          cancel,
		logger:          logger,
	}
}

// Context is cancelled when Shutdown starts.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Go starts fn on a tracked goroutine. fn receives the manager's context
// and should return once it is cancelled.
func (m *Manager) Go(name string, fn func(context.Context)) error {
	m.mu.Lock()
	stopped := m.stopped
	m.mu.Unlock()
	if stopped {
		return fmt.Errorf("resource manager stopped, cannot start %s", name)
	}

	current := atomic.LoadInt64(&m.goroutineCount)
	if current >= m.maxGoroutines {
		m.logger.Warn(m.ctx, "Goroutine limit exceeded",
			"current", current,
			"limit", m.maxGoroutines,
			"name", name,
		)
		return fmt.Errorf("goroutine limit exceeded: %d/%d", current, m.maxGoroutines)
	}

	atomic.AddInt64(&m.goroutineCount, 1)

	go func() {
		defer atomic.AddInt64(&m.goroutineCount, -1)

		defer func() {
			if r := recover(); r != nil {
				m.logger.Error(m.ctx, "Goroutine panic",
					fmt.Errorf("panic: %v", r),
					"name", name,
				)
			}
		}()

		fn(m.ctx)
	}()

	return nil
}

// Count returns the number of tracked goroutines still running.
func (m *Manager) Count() int64 {
	return atomic.LoadInt64(&m.goroutineCount)
}

// Shutdown cancels the manager's context and waits for tracked goroutines
// to finish, giving up after the shutdown timeout.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	m.stopped = true
	m.mu.Unlock()

	m.cancel()

	shutdownCtx, cancel := context.WithTimeout(ctx, m.shutdownTimeout)
	defer cancel()

	return m.waitForGoroutines(shutdownCtx)
}

// waitForGoroutines polls the tracked count until it reaches zero.
func (m *Manager) waitForGoroutines(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		count := m.Count()
		if count == 0 {
			m.logger.Debug(ctx, "All tracked goroutines finished")
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			remaining := m.Count()
			m.logger.Warn(ctx, "Shutdown timeout exceeded with goroutines still running",
				"remaining", remaining,
			)
			return fmt.Errorf("shutdown timeout: %d goroutines still running", remaining)
		}
	}
}
