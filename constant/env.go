package constant

// Environment variable names
const (
	// EnvServerAddress is the address the fiber app listens on
	EnvServerAddress = "SERVER_ADDRESS"

	// EnvPassthroughOrigin overrides where unresolvable requests are forwarded
	EnvPassthroughOrigin = "PASSTHROUGH_ORIGIN"

	// EnvSkynetGateways overrides the skynet candidate list (comma-separated)
	EnvSkynetGateways = "SKYNET_GATEWAYS"

	// EnvHTTPTimeoutSeconds overrides the upstream HTTP client timeout
	EnvHTTPTimeoutSeconds = "HTTP_TIMEOUT_SECONDS"
)

// DefaultServerAddress is used when EnvServerAddress is not set
const DefaultServerAddress = ":8080"
