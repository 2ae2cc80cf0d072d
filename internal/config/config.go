package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/LerianStudio/lib-commons/commons"
	cn "github.com/LerianStudio/dweb-gateway/constant"
	"github.com/LerianStudio/dweb-gateway/pkg"
)

// ProxyConfig holds the configuration for the gateway
type ProxyConfig struct {
	ServerAddress string

	// Record resolution
	LookupURL     string
	AccountSuffix string
	BypassHost    string

	// Upstream gateways
	IPFSGatewayURL    string
	ArweaveGatewayURL string
	SkynetGateways    []string
	SkynetPlaceholder string

	// PassthroughOrigin, when set, receives every request that cannot be resolved.
	// Otherwise the request is forwarded to its own URL.
	PassthroughOrigin string

	// Cache configuration
	CacheTTL time.Duration

	// HTTP configuration
	HTTPTimeout     time.Duration
	ProbeTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// NewDefaultConfig creates a new config with the built-in constants
func NewDefaultConfig() ProxyConfig {
	return ProxyConfig{
		ServerAddress:     cn.DefaultServerAddress,
		LookupURL:         cn.RecordLookupURL,
		AccountSuffix:     cn.AccountSuffix,
		BypassHost:        cn.BypassHost,
		IPFSGatewayURL:    cn.IPFSGatewayBaseURL,
		ArweaveGatewayURL: cn.ArweaveGatewayBaseURL,
		SkynetGateways:    cn.SkynetGateways(),
		SkynetPlaceholder: cn.SkynetGatewayCheckerHash,
		CacheTTL:          cn.CacheTTL,
		HTTPTimeout:       cn.DefaultHTTPTimeoutSeconds * time.Second,
		ProbeTimeout:      cn.DefaultProbeTimeoutSeconds * time.Second,
		ShutdownTimeout:   cn.DefaultShutdownTimeoutSeconds * time.Second,
	}
}

// FromEnv starts from the defaults and applies deploy-time overrides
func FromEnv() (*ProxyConfig, error) {
	cfg := NewDefaultConfig()

	cfg.ServerAddress = commons.GetenvOrDefault(cn.EnvServerAddress, cfg.ServerAddress)
	cfg.PassthroughOrigin = commons.GetenvOrDefault(cn.EnvPassthroughOrigin, "")

	if gateways := pkg.ParseList(commons.GetenvOrDefault(cn.EnvSkynetGateways, "")); len(gateways) > 0 {
		cfg.SkynetGateways = gateways
	}

	if secs := commons.GetenvIntOrDefault(cn.EnvHTTPTimeoutSeconds, cn.DefaultHTTPTimeoutSeconds); secs > 0 {
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *ProxyConfig) Validate() error {
	if c.LookupURL == "" {
		return errors.New("record lookup URL is required")
	}

	if c.AccountSuffix == "" {
		return errors.New("account suffix is required")
	}

	if c.IPFSGatewayURL == "" || c.ArweaveGatewayURL == "" {
		return errors.New("ipfs and arweave gateway URLs are required")
	}

	if len(c.SkynetGateways) == 0 {
		return errors.New("at least one skynet gateway is required")
	}

	for _, gw := range c.SkynetGateways {
		if !strings.Contains(gw, c.SkynetPlaceholder) {
			return errors.New("skynet gateway " + gw + " does not embed the checker placeholder")
		}
	}

	if c.PassthroughOrigin != "" {
		u, err := url.Parse(c.PassthroughOrigin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("passthrough origin must be an absolute URL")
		}
	}

	if c.CacheTTL <= 0 {
		return errors.New("cache TTL must be positive")
	}

	return nil
}
