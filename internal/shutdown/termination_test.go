package shutdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTerminate_RunsHandlerOnce(t *testing.T) {
	m := New()

	var calls atomic.Int32

	var reason string

	m.SetHandler(func(r string) {
		calls.Add(1)
		reason = r
	})

	m.Terminate("first")
	m.Terminate("second")

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "first", reason)
}

func TestSetHandler_IgnoresNil(t *testing.T) {
	m := New()

	var called bool

	m.SetHandler(func(string) { called = true })
	m.SetHandler(nil)
	m.Terminate("stop")

	assert.True(t, called)
}

func TestWait_ReturnsOnContextDone(t *testing.T) {
	m := New()

	reasons := make(chan string, 1)
	m.SetHandler(func(r string) { reasons <- r })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.Wait(ctx)

	select {
	case r := <-reasons:
		assert.Contains(t, r, "context canceled")
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestWait_ReturnsAfterTerminate(t *testing.T) {
	m := New()

	returned := make(chan struct{})

	go func() {
		m.Wait(context.Background())
		close(returned)
	}()

	m.Terminate("manual")

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return")
	}
}
