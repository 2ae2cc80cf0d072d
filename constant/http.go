package constant

// HeaderConstants defines HTTP header names used in requests and responses
const (
	HeaderCacheControl  = "Cache-Control"
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
	HeaderHost          = "Host"

	// HeaderForwardedBy marks requests the gateway forwarded unmodified, so a
	// passthrough that lands back on the gateway is answered instead of forwarded again.
	HeaderForwardedBy = "X-Dweb-Gateway-Forwarded"
)

// TimeConstants defines timeout values
const (
	// DefaultHTTPTimeoutSeconds is the default HTTP client timeout in seconds
	DefaultHTTPTimeoutSeconds = 30
	// DefaultProbeTimeoutSeconds bounds a single gateway race
	DefaultProbeTimeoutSeconds = 5
	// DefaultShutdownTimeoutSeconds bounds the graceful shutdown of the server
	DefaultShutdownTimeoutSeconds = 10
)
