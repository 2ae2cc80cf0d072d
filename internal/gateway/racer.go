// Package gateway picks a live gateway among equivalent public endpoints by
// racing liveness probes, remembering the winner per network.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	libErr "github.com/LerianStudio/dweb-gateway/error"
	"github.com/LerianStudio/dweb-gateway/internal/cache"
)

// ProbeFunc checks a single candidate URL. A nil error means the candidate is live.
type ProbeFunc func(ctx context.Context, candidate string) error

// Racer selects a gateway per network kind, backed by a short-lived cache
type Racer struct {
	cache   *cache.Manager
	probe   ProbeFunc
	timeout time.Duration
	logger  log.Logger
}

// New creates a racer probing candidates with httpClient. Each race is bounded by timeout.
func New(gatewayCache *cache.Manager, httpClient *http.Client, timeout time.Duration, logger log.Logger) *Racer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Racer{
		cache:   gatewayCache,
		probe:   httpProbe(httpClient),
		timeout: timeout,
		logger:  logger,
	}
}

// SetProbe replaces the liveness check (useful for testing)
func (r *Racer) SetProbe(probe ProbeFunc) {
	if probe != nil {
		r.probe = probe
	}
}

// SelectGateway returns a usable base URL for kind. It never fails: when every
// probe fails it falls back to the last known winner, then to candidates[0].
func (r *Racer) SelectGateway(ctx context.Context, candidates []string, kind string) string {
	if len(candidates) == 0 {
		return ""
	}

	if gw, ok := r.cache.Get(kind); ok {
		return gw
	}

	if winner, ok := r.race(ctx, candidates); ok {
		r.cache.Store(kind, winner)
		r.logger.Debugf("Gateway race for %s won by %s", kind, winner)

		return winner
	}

	if previous, ok := r.cache.Stale(kind); ok {
		r.logger.Warnf("All %s gateways failed, keeping previous %s", kind, previous)
		return previous
	}

	r.logger.Warnf("All %s gateways failed, defaulting to %s", kind, candidates[0])

	return candidates[0]
}

// race probes every candidate concurrently and returns the first one to
// succeed. Losing probes are cancelled and their results discarded.
func (r *Racer) race(ctx context.Context, candidates []string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// buffered so abandoned probes never block
	results := make(chan string, len(candidates))

	for _, candidate := range candidates {
		go func(candidate string) {
			if err := r.probe(ctx, candidate); err != nil {
				switch {
				case ctx.Err() != nil:
					r.logger.Debugf("Gateway %s probe abandoned: %v", candidate, err)
				case libErr.IsConnectionError(err):
					r.logger.Debugf("Gateway %s unreachable: %v", candidate, err)
				default:
					r.logger.Warnf("Gateway %s failed probe: %v", candidate, err)
				}

				results <- ""

				return
			}

			results <- candidate
		}(candidate)
	}

	for range candidates {
		select {
		case winner := <-results:
			if winner != "" {
				return winner, true
			}
		case <-ctx.Done():
			return "", false
		}
	}

	return "", false
}

func httpProbe(client *http.Client) ProbeFunc {
	return func(ctx context.Context, candidate string) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
		if err != nil {
			return fmt.Errorf("failed to create probe: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("probe failed: %w", err)
		}
		defer resp.Body.Close()

		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("probe returned status %d", resp.StatusCode)
		}

		return nil
	}
}
