package background

import (
	"context"
	"errors"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// ErrStopped is returned by Go once Shutdown has been called.
var ErrStopped = errors.New("background manager stopped")

// Task is a unit of detached work. The context it receives is not tied to any
// inbound request.
type Task func(ctx context.Context)

// Manager runs detached tasks that outlive the request that scheduled them
// and lets the process wait for all of them before exiting.
type Manager struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	logger  log.Logger
}

// New creates a new background task manager
func New(logger log.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Go schedules task on its own goroutine. A panicking task is logged and does
// not take the process down.
func (m *Manager) Go(name string, task Task) error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return ErrStopped
	}

	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				m.logger.Errorf("Background task %s panicked: %v", name, r)
			}
		}()

		task(m.ctx)
	}()

	return nil
}

// Shutdown refuses new tasks and waits for the scheduled ones. If ctx ends
// first, running tasks see their context cancelled and ctx.Err() is returned.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()

	done := make(chan struct{})

	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.cancel()
		m.logger.Info("Background tasks drained")

		return nil
	case <-ctx.Done():
		m.cancel()
		m.logger.Warnf("Background shutdown interrupted: %v", ctx.Err())

		return ctx.Err()
	}
}
