package middleware

import (
	"context"
	"net/http"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/dweb-gateway/internal/config"
	"github.com/LerianStudio/dweb-gateway/proxy"
)

// GatewayClient is the public client API that exposes the gateway as a fiber handler.
// It's a wrapper around the proxy client
type GatewayClient struct {
	proxy *proxy.Client
}

// NewGatewayClient creates a new gateway client. A nil cfg uses the built-in defaults.
func NewGatewayClient(cfg *config.ProxyConfig, logger *log.Logger) (*GatewayClient, error) {
	client, err := proxy.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &GatewayClient{proxy: client}, nil
}

// SetHTTPClient overrides the HTTP client of the record lookup (useful for testing)
func (c *GatewayClient) SetHTTPClient(client *http.Client) {
	if c != nil && c.proxy != nil {
		c.proxy.SetHTTPClient(client)
	}
}

// GetLogger returns the logger used by the client
func (c *GatewayClient) GetLogger() log.Logger {
	return c.proxy.GetLogger()
}

// Shutdown waits for pending response cache writes
func (c *GatewayClient) Shutdown(ctx context.Context) error {
	if c == nil || c.proxy == nil {
		return nil
	}

	return c.proxy.Shutdown(ctx)
}
