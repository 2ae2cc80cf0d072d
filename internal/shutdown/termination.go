package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler is invoked once when the process is asked to stop
type Handler func(reason string)

// DefaultHandler does nothing; the caller returns from Wait and exits normally.
func DefaultHandler(string) {}

// Manager turns OS signals or an explicit call into a single termination.
type Manager struct {
	handler Handler
	mu      sync.RWMutex
	once    sync.Once
	done    chan struct{}
}

// New creates a new termination manager with the default handler
func New() *Manager {
	return &Manager{
		handler: DefaultHandler,
		done:    make(chan struct{}),
	}
}

// SetHandler updates the termination handler.
// Call it during startup, before Wait.
func (m *Manager) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
}

// Terminate invokes the handler. Only the first call has any effect.
func (m *Manager) Terminate(reason string) {
	m.once.Do(func() {
		m.mu.RLock()
		handler := m.handler
		m.mu.RUnlock()

		handler(reason)
		close(m.done)
	})
}

// Wait blocks until SIGINT, SIGTERM, ctx cancellation or a Terminate call,
// then returns after the handler has run.
func (m *Manager) Wait(ctx context.Context) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		m.Terminate("received signal " + sig.String())
	case <-ctx.Done():
		m.Terminate("context done: " + ctx.Err().Error())
	case <-m.done:
	}
}
