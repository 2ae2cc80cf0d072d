package constant

import "errors"

// Structured error codes for gateway responses
var (
	ErrInternalServer      = errors.New("DWG-0001")
	ErrLookupFailed        = errors.New("DWG-0002")
	ErrUpstreamFetchFailed = errors.New("DWG-0003")
	ErrPassthroughFailed   = errors.New("DWG-0004")
	ErrMissingHost         = errors.New("DWG-0005")
	ErrInvalidConfig       = errors.New("DWG-0006")
	ErrPassthroughLoop     = errors.New("DWG-0007")
)
