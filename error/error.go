package error

import (
	"errors"
	"net"
	"strings"

	"github.com/LerianStudio/dweb-gateway/model"
)

// ErrPassthrough signals that the request must be forwarded unmodified to its
// original destination. It is never shown to the caller.
var ErrPassthrough = errors.New("passthrough")

// APIError is a custom error type to propagate a non-success response from an
// upstream service so it can be returned to the caller verbatim.
type APIError struct {
	StatusCode int
	Msg        string
	Response   *model.Response
}

func (e *APIError) Error() string {
	return e.Msg
}

// IsPassthrough reports whether err asks for the passthrough fallback.
func IsPassthrough(err error) bool {
	return errors.Is(err, ErrPassthrough)
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsConnectionError checks if an error is likely related to network connectivity
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	connectionErrors := []string{
		"connection refused",
		"no such host",
		"host unreachable",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"operation timed out",
		"eof",
		"connection reset by peer",
		"dial tcp",
		"tls handshake",
		"context deadline exceeded",
		"operation canceled",
	}

	for _, msg := range connectionErrors {
		if strings.Contains(errStr, msg) {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return IsConnectionError(unwrapped)
	}

	return false
}
