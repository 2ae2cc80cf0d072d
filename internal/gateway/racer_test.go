package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LerianStudio/dweb-gateway/internal/cache"
	"github.com/LerianStudio/dweb-gateway/test/helper/testlogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kind = "dweb.skynet"

func newRacer(t *testing.T, probe ProbeFunc) (*Racer, *cache.Manager) {
	t.Helper()

	logger := testlogger.New()

	gatewayCache, err := cache.New("gateway", 15*time.Minute, logger)
	require.NoError(t, err)
	t.Cleanup(gatewayCache.Close)

	r := New(gatewayCache, nil, time.Second, logger)
	r.SetProbe(probe)

	return r, gatewayCache
}

func TestSelectGateway_FirstSuccessWins(t *testing.T) {
	delays := map[string]time.Duration{
		"https://slow.example/x": 500 * time.Millisecond,
		"https://bad.example/x":  0,
		"https://fast.example/x": 20 * time.Millisecond,
	}

	r, _ := newRacer(t, func(ctx context.Context, candidate string) error {
		if candidate == "https://bad.example/x" {
			return errors.New("dial tcp: connection refused")
		}

		select {
		case <-time.After(delays[candidate]):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	start := time.Now()
	got := r.SelectGateway(context.Background(), []string{
		"https://slow.example/x",
		"https://bad.example/x",
		"https://fast.example/x",
	}, kind)

	assert.Equal(t, "https://fast.example/x", got)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "must not wait for losing probes")
}

func TestSelectGateway_CachedWinnerSkipsProbes(t *testing.T) {
	var calls atomic.Int32

	r, _ := newRacer(t, func(ctx context.Context, candidate string) error {
		calls.Add(1)
		return nil
	})

	candidates := []string{"https://a.example/x"}

	assert.Equal(t, "https://a.example/x", r.SelectGateway(context.Background(), candidates, kind))
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, "https://a.example/x", r.SelectGateway(context.Background(), candidates, kind))
	assert.Equal(t, int32(1), calls.Load(), "second selection must come from cache")
}

func TestSelectGateway_AllFailNoCache(t *testing.T) {
	r, gatewayCache := newRacer(t, func(ctx context.Context, candidate string) error {
		return errors.New("no such host")
	})

	candidates := []string{"https://first.example/x", "https://second.example/x"}

	assert.NotPanics(t, func() {
		got := r.SelectGateway(context.Background(), candidates, kind)
		assert.Equal(t, "https://first.example/x", got)
	})

	_, cached := gatewayCache.Stale(kind)
	assert.False(t, cached, "the default must not be cached as a winner")
}

func TestSelectGateway_AllFailUsesStaleWinner(t *testing.T) {
	var healthy atomic.Bool

	healthy.Store(true)

	r, gatewayCache := newRacer(t, func(ctx context.Context, candidate string) error {
		if healthy.Load() && candidate == "https://second.example/x" {
			return nil
		}

		return errors.New("probe returned status 502")
	})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gatewayCache.SetClock(func() time.Time { return now })

	candidates := []string{"https://first.example/x", "https://second.example/x"}

	require.Equal(t, "https://second.example/x", r.SelectGateway(context.Background(), candidates, kind))

	healthy.Store(false)
	now = now.Add(16 * time.Minute)

	assert.Equal(t, "https://second.example/x", r.SelectGateway(context.Background(), candidates, kind))
}

func TestSelectGateway_EmptyCandidates(t *testing.T) {
	r, _ := newRacer(t, func(ctx context.Context, candidate string) error { return nil })

	assert.Equal(t, "", r.SelectGateway(context.Background(), nil, kind))
}

func TestHTTPProbe(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()

	probe := httpProbe(&http.Client{Timeout: time.Second})

	assert.NoError(t, probe(context.Background(), ok.URL))
	assert.Error(t, probe(context.Background(), broken.URL))
	assert.Error(t, probe(context.Background(), "http://127.0.0.1:1"))
}

func TestSelectGateway_RealProbes(t *testing.T) {
	live := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer live.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer dead.Close()

	logger := testlogger.New()

	gatewayCache, err := cache.New("gateway", 15*time.Minute, logger)
	require.NoError(t, err)
	defer gatewayCache.Close()

	r := New(gatewayCache, live.Client(), time.Second, logger)

	got := r.SelectGateway(context.Background(), []string{dead.URL + "/x", live.URL + "/x"}, kind)
	assert.Equal(t, live.URL+"/x", got)
}

func TestRace_WarnsOnlyForUnhealthyGateways(t *testing.T) {
	logger := testlogger.New()

	gatewayCache, err := cache.New("gateway", 15*time.Minute, logger)
	require.NoError(t, err)
	t.Cleanup(gatewayCache.Close)

	r := New(gatewayCache, nil, time.Second, logger)
	r.SetProbe(func(ctx context.Context, candidate string) error {
		if candidate == "https://down.example/x" {
			return errors.New("dial tcp: connection refused")
		}

		return errors.New("probe returned status 502")
	})

	got := r.SelectGateway(context.Background(), []string{"https://down.example/x", "https://sick.example/x"}, kind)
	assert.Equal(t, "https://down.example/x", got)

	assert.True(t, logger.Contains(testlogger.LevelWarn, "sick.example", "failed probe", "502"))
	assert.False(t, logger.Contains(testlogger.LevelWarn, "down.example", "failed probe"))
	assert.True(t, logger.Contains(testlogger.LevelDebug, "down.example", "unreachable"))
}
