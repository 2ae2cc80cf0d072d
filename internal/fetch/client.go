// Package fetch performs upstream HTTP requests on behalf of the gateway.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/dweb-gateway/constant"
	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/dgraph-io/ristretto/v2"
)

// hopHeaders are connection-scoped and never forwarded.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// CacheHint asks the client to keep a successful response for TTL under Key.
type CacheHint struct {
	TTL time.Duration
	Key string
}

// Client performs upstream requests and honors cache hints
type Client struct {
	httpClient *http.Client
	hints      *ristretto.Cache[string, *model.Response]
	logger     log.Logger
}

// New creates a fetch client
func New(httpClient *http.Client, logger log.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constant.DefaultHTTPTimeoutSeconds * time.Second}
	}

	hints, err := ristretto.NewCache(&ristretto.Config[string, *model.Response]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.ResponseCacheMaxCost,
		BufferItems: constant.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: httpClient,
		hints:      hints,
		logger:     logger,
	}, nil
}

// Fetch GETs rawURL without any state of the inbound request: no caller
// headers, cookies or body reach the content gateway. A 200 response is kept
// according to hint; a zero hint disables it.
func (c *Client) Fetch(ctx context.Context, rawURL string, hint CacheHint) (*model.Response, error) {
	cacheable := hint.TTL > 0 && hint.Key != ""

	if cacheable {
		if res, found := c.hints.Get(hint.Key); found {
			c.logger.Debugf("Upstream cache hit for %s", hint.Key)
			return res.Clone(), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	res, err := c.send(req)
	if err != nil {
		return nil, err
	}

	if cacheable && res.StatusCode == http.StatusOK {
		c.hints.SetWithTTL(hint.Key, res.Clone(), int64(len(res.Body))+1, hint.TTL)
	}

	return res, nil
}

// Forward sends the inbound request unmodified to rawURL, keeping its Host
// header and marking it with HeaderForwardedBy.
func (c *Client) Forward(ctx context.Context, rawURL string, in *model.Request) (*model.Response, error) {
	var body io.Reader
	if len(in.Body) > 0 {
		body = bytes.NewReader(in.Body)
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = in.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	for _, h := range hopHeaders {
		req.Header.Del(h)
	}

	req.Host = in.Header.Get(constant.HeaderHost)
	req.Header.Del(constant.HeaderHost)
	req.Header.Set(constant.HeaderForwardedBy, "1")

	return c.send(req)
}

// Close releases the hint cache.
func (c *Client) Close() {
	c.hints.Close()
}

func (c *Client) send(req *http.Request) (*model.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	header := resp.Header.Clone()
	for _, h := range hopHeaders {
		header.Del(h)
	}

	return &model.Response{
		StatusCode: resp.StatusCode,
		Header:     header,
		Body:       payload,
	}, nil
}
