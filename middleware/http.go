package middleware

import (
	"net/http"
	"net/url"

	cn "github.com/LerianStudio/dweb-gateway/constant"
	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/LerianStudio/dweb-gateway/pkg"
	pkgHTTP "github.com/LerianStudio/dweb-gateway/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// Handler creates a Fiber handler that proxies every request through the gateway.
// It always answers, either with the upstream response or a generic error.
func (c *GatewayClient) Handler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		l := c.proxy.GetLogger()

		req, err := toRequest(ctx)
		if err != nil {
			l.Errorf("Failed to read inbound request %s: %v", ctx.OriginalURL(), err)
			return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrMissingHost, ""))
		}

		res, err := c.proxy.Handle(ctx.UserContext(), req)
		if err != nil {
			return pkgHTTP.WithError(ctx, err)
		}

		return writeResponse(ctx, res)
	}
}

// toRequest copies the fasthttp request, whose buffers are reused after the handler returns.
func toRequest(ctx *fiber.Ctx) (*model.Request, error) {
	host := ctx.Hostname()

	u, err := url.Parse(ctx.Protocol() + "://" + host + ctx.OriginalURL())
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	ctx.Request().Header.VisitAll(func(key, value []byte) {
		header.Add(string(key), string(value))
	})
	header.Set(cn.HeaderHost, host)

	return &model.Request{
		Method: ctx.Method(),
		URL:    u,
		Header: header,
		Body:   append([]byte(nil), ctx.Body()...),
	}, nil
}

func writeResponse(ctx *fiber.Ctx, res *model.Response) error {
	for key, values := range res.Header {
		if key == cn.HeaderContentLength {
			continue
		}

		for _, v := range values {
			ctx.Response().Header.Add(key, v)
		}
	}

	return ctx.Status(res.StatusCode).Send(res.Body)
}
