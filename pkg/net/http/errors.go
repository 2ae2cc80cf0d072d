package http

import (
	"errors"

	commonsHttp "github.com/LerianStudio/lib-commons/commons/net/http"
	"github.com/LerianStudio/dweb-gateway/pkg"
	"github.com/gofiber/fiber/v2"
)

// WithError writes the generic error response matching err.
func WithError(c *fiber.Ctx, err error) error {
	var (
		vErr pkg.ValidationError
		gErr pkg.GatewayError
		iErr pkg.InternalServerError
	)

	switch {
	case errors.As(err, &vErr):
		return commonsHttp.BadRequest(c, pkg.ValidationKnownFieldsError{
			Code:    vErr.Code,
			Title:   vErr.Title,
			Message: vErr.Message,
			Fields:  nil,
		})
	case errors.As(err, &gErr):
		return commonsHttp.InternalServerError(c, gErr.Code, gErr.Title, gErr.Message)
	case errors.As(err, &iErr):
		return commonsHttp.InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	default:
		_ = errors.As(pkg.ValidateInternalError(err, ""), &iErr)

		return commonsHttp.InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	}
}
