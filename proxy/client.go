// Package proxy serves every inbound request: it resolves the host to a
// storage pointer, fetches the content from the matching gateway and keeps
// successful responses in the response cache.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	cn "github.com/LerianStudio/dweb-gateway/constant"
	libErr "github.com/LerianStudio/dweb-gateway/error"
	"github.com/LerianStudio/dweb-gateway/internal/api"
	"github.com/LerianStudio/dweb-gateway/internal/background"
	"github.com/LerianStudio/dweb-gateway/internal/cache"
	"github.com/LerianStudio/dweb-gateway/internal/compose"
	"github.com/LerianStudio/dweb-gateway/internal/config"
	"github.com/LerianStudio/dweb-gateway/internal/fetch"
	"github.com/LerianStudio/dweb-gateway/internal/gateway"
	"github.com/LerianStudio/dweb-gateway/internal/resolver"
	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/LerianStudio/dweb-gateway/pkg"
)

// Client handles proxied requests with caching and background cache writes
type Client struct {
	config          *config.ProxyConfig
	apiClient       *api.Client
	resolutionCache *cache.Manager
	gatewayCache    *cache.Manager
	responses       *cache.ResponseStore
	resolver        *resolver.Resolver
	composer        *compose.Composer
	fetcher         *fetch.Client
	background      *background.Manager
	logger          log.Logger
}

// New wires a gateway client from cfg
func New(cfg *config.ProxyConfig, logger *log.Logger) (*Client, error) {
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	if cfg == nil {
		defaults := config.NewDefaultConfig()
		cfg = &defaults
	}

	if err := cfg.Validate(); err != nil {
		l.Errorf("Invalid configuration: %s", err.Error())
		return nil, fmt.Errorf("%w: %w", cn.ErrInvalidConfig, err)
	}

	resolutionCache, err := cache.New("resolution", cfg.CacheTTL, l)
	if err != nil {
		l.Errorf("Failed to initialize resolution cache: %s", err.Error())
		return nil, err
	}

	gatewayCache, err := cache.New("gateway", cfg.CacheTTL, l)
	if err != nil {
		l.Errorf("Failed to initialize gateway cache: %s", err.Error())
		return nil, err
	}

	responses, err := cache.NewResponseStore(cfg.CacheTTL, l)
	if err != nil {
		l.Errorf("Failed to initialize response cache: %s", err.Error())
		return nil, err
	}

	fetcher, err := fetch.New(&http.Client{Timeout: cfg.HTTPTimeout}, l)
	if err != nil {
		l.Errorf("Failed to initialize fetch client: %s", err.Error())
		return nil, err
	}

	if cfg.PassthroughOrigin == "" {
		l.Warn("No passthrough origin configured, unresolved requests are forwarded to their own URL")
	}

	apiClient := api.New(cfg.LookupURL, &http.Client{Timeout: cfg.HTTPTimeout}, l)
	racer := gateway.New(gatewayCache, &http.Client{Timeout: cfg.ProbeTimeout}, cfg.ProbeTimeout, l)

	composer := compose.New(compose.Gateways{
		IPFS:              cfg.IPFSGatewayURL,
		Arweave:           cfg.ArweaveGatewayURL,
		Skynet:            cfg.SkynetGateways,
		SkynetPlaceholder: cfg.SkynetPlaceholder,
	}, racer, l)

	return &Client{
		config:          cfg,
		apiClient:       apiClient,
		resolutionCache: resolutionCache,
		gatewayCache:    gatewayCache,
		responses:       responses,
		resolver:        resolver.New(apiClient, resolutionCache, cfg.AccountSuffix, cfg.BypassHost, l),
		composer:        composer,
		fetcher:         fetcher,
		background:      background.New(l),
		logger:          l,
	}, nil
}

// SetHTTPClient overrides the HTTP client of the record lookup (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	c.apiClient.SetHTTPClient(client)
}

// GetLogger returns the logger used by the client
func (c *Client) GetLogger() log.Logger {
	return c.logger
}

// Handle answers req. Upstream and lookup responses come back verbatim; the
// returned error is always one of the pkg business errors.
func (c *Client) Handle(ctx context.Context, req *model.Request) (res *model.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorf("Recovered from panic while handling request: %v", r)

			res = nil
			err = pkg.ValidateInternalError(fmt.Errorf("panic: %v", r), "")
		}
	}()

	if req == nil || req.URL == nil || req.URL.Host == "" {
		return nil, pkg.ValidateBusinessError(cn.ErrMissingHost, "")
	}

	if cached, found := c.responses.Match(req); found {
		c.logger.Debugf("Response cache hit for %s", req.URL)
		return cached, nil
	}

	pointer, err := c.resolver.Resolve(ctx, req.URL.Host)
	if err != nil {
		return c.handleResolveError(ctx, req, err)
	}

	target, err := c.composer.Compose(ctx, pointer, req.URL)
	if err != nil {
		if libErr.IsPassthrough(err) {
			c.logger.Debugf("Pointer %s of %s is not proxied", pointer.Encode(), req.URL.Host)
			return c.passthrough(ctx, req)
		}

		c.logger.Errorf("Failed to compose upstream URL for %s: %v", req.URL.Host, err)

		return nil, pkg.ValidateInternalError(err, "")
	}

	c.logger.Infof("Proxying %s to %s", req.URL, target)

	upstream, err := c.fetcher.Fetch(ctx, target, fetch.CacheHint{TTL: c.config.CacheTTL, Key: target})
	if err != nil {
		c.logger.Errorf("Upstream fetch of %s failed: %v", target, err)
		return nil, pkg.ValidateBusinessError(cn.ErrUpstreamFetchFailed, "", target)
	}

	if !upstream.OK() {
		c.logger.Warnf("Upstream %s answered %d", target, upstream.StatusCode)
		return upstream, nil
	}

	out := upstream.Clone()
	out.Header.Set(cn.HeaderCacheControl, cn.CacheControlValue)

	if out.StatusCode == http.StatusOK {
		c.scheduleCacheWrite(req, out.Clone())
	}

	return out, nil
}

func (c *Client) handleResolveError(ctx context.Context, req *model.Request, err error) (*model.Response, error) {
	if libErr.IsPassthrough(err) {
		return c.passthrough(ctx, req)
	}

	if apiErr, ok := libErr.AsAPIError(err); ok && apiErr.Response != nil {
		c.logger.Warnf("Record lookup for %s answered %d", req.URL.Host, apiErr.StatusCode)
		return apiErr.Response.Clone(), nil
	}

	c.logger.Errorf("Record lookup for %s failed: %v", req.URL.Host, err)

	return nil, pkg.ValidateBusinessError(cn.ErrLookupFailed, "", req.URL.Host)
}

// passthrough forwards req unmodified to the configured origin, or to its own URL.
// A request the gateway already forwarded once is refused.
func (c *Client) passthrough(ctx context.Context, req *model.Request) (*model.Response, error) {
	if req.Header.Get(cn.HeaderForwardedBy) != "" {
		c.logger.Errorf("Passthrough of %s came back to the gateway, refusing to forward it again", req.URL)
		return nil, pkg.ValidateBusinessError(cn.ErrPassthroughLoop, "", req.URL.Host)
	}

	target := req.URL.String()
	if c.config.PassthroughOrigin != "" {
		target = strings.TrimRight(c.config.PassthroughOrigin, "/") + req.URL.RequestURI()
	}

	res, err := c.fetcher.Forward(ctx, target, req)
	if err != nil {
		c.logger.Errorf("Passthrough to %s failed: %v", target, err)
		return nil, pkg.ValidateBusinessError(cn.ErrPassthroughFailed, "", target)
	}

	return res, nil
}

func (c *Client) scheduleCacheWrite(req *model.Request, res *model.Response) {
	err := c.background.Go("response-cache", func(context.Context) {
		c.responses.Put(req, res)
	})
	if errors.Is(err, background.ErrStopped) {
		c.logger.Debugf("Skipping response cache write for %s: shutting down", req.URL)
	}
}

// Shutdown waits for pending cache writes and releases the caches
func (c *Client) Shutdown(ctx context.Context) error {
	err := c.background.Shutdown(ctx)

	c.responses.Close()
	c.resolutionCache.Close()
	c.gatewayCache.Close()
	c.fetcher.Close()

	return err
}
