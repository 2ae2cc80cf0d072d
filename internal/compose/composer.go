// Package compose builds the upstream URL for a resolved pointer.
package compose

import (
	"context"
	"net/url"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/dweb-gateway/constant"
	libErr "github.com/LerianStudio/dweb-gateway/error"
	"github.com/LerianStudio/dweb-gateway/internal/identifier"
	"github.com/LerianStudio/dweb-gateway/model"
)

// GatewaySelector returns a live base URL among candidates for a network kind.
type GatewaySelector interface {
	SelectGateway(ctx context.Context, candidates []string, kind string) string
}

// Gateways holds the fixed upstream endpoints
type Gateways struct {
	IPFS              string
	Arweave           string
	Skynet            []string
	SkynetPlaceholder string
}

// Composer builds upstream URLs
type Composer struct {
	gateways Gateways
	selector GatewaySelector
	logger   log.Logger
}

// New creates a composer
func New(gateways Gateways, selector GatewaySelector, logger log.Logger) *Composer {
	return &Composer{
		gateways: gateways,
		selector: selector,
		logger:   logger,
	}
}

// Compose returns the upstream URL for p, keeping the path and query of
// requestURL. It returns libErr.ErrPassthrough when p cannot be trusted or
// its network has no proxy scheme.
func (c *Composer) Compose(ctx context.Context, p model.Pointer, requestURL *url.URL) (string, error) {
	suffix := pathAndQuery(requestURL)

	switch p.Kind {
	case cn.RecordIPNS:
		id := p.Value
		if !identifier.IsDomainHost(id) {
			id = identifier.NormalizeIPNS(id)
			if !identifier.IsNameID(id) {
				c.logger.Debugf("Rejected ipns value %q", p.Value)
				return "", libErr.ErrPassthrough
			}
		}

		return c.gateways.IPFS + "/ipns/" + id + suffix, nil

	case cn.RecordIPFS:
		id := identifier.NormalizeIPFS(p.Value)
		if !identifier.IsContentID(id) {
			c.logger.Debugf("Rejected ipfs value %q", p.Value)
			return "", libErr.ErrPassthrough
		}

		return c.gateways.IPFS + "/ipfs/" + id + suffix, nil

	case cn.RecordSkynet:
		gw := c.selector.SelectGateway(ctx, c.gateways.Skynet, cn.RecordSkynet)
		if gw == "" {
			return "", libErr.ErrPassthrough
		}

		return strings.Replace(gw, c.gateways.SkynetPlaceholder, p.Value, 1) + suffix, nil

	case cn.RecordArweave:
		return c.gateways.Arweave + p.Value + suffix, nil

	default:
		// resilio has no proxy scheme
		return "", libErr.ErrPassthrough
	}
}

// pathAndQuery renders the request path (at least "/") and "?query" when present.
func pathAndQuery(u *url.URL) string {
	if u == nil {
		return "/"
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	if u.RawQuery != "" {
		return path + "?" + u.RawQuery
	}

	return path
}
