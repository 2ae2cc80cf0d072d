package mocks

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sync"
)

// ErrConnectionRefused is what ConnectionRefusedClient returns for every request.
var ErrConnectionRefused = errors.New("dial tcp: connection refused")

// RoundTripFunc turns a function into an http.RoundTripper
type RoundTripFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the http.RoundTripper interface
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClientMock creates a new HTTP client with a mock transport
func NewHTTPClientMock(fn RoundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

// NewHTTPResponse builds a response for req with the given status, body and
// header pairs ("Key", "Value", ...).
func NewHTTPResponse(req *http.Request, statusCode int, body []byte, headerPairs ...string) *http.Response {
	header := make(http.Header)
	for i := 0; i+1 < len(headerPairs); i += 2 {
		header.Add(headerPairs[i], headerPairs[i+1])
	}

	return &http.Response{
		StatusCode:    statusCode,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Header:        header,
		Request:       req,
	}
}

// ConnectionRefusedClient fails every request at the transport
func ConnectionRefusedClient() *http.Client {
	return NewHTTPClientMock(func(*http.Request) (*http.Response, error) {
		return nil, ErrConnectionRefused
	})
}

// StaticResponseClient answers every request with the same status and body
func StaticResponseClient(status int, body []byte) *http.Client {
	return NewHTTPClientMock(func(req *http.Request) (*http.Response, error) {
		return NewHTTPResponse(req, status, body), nil
	})
}

// RecordingTransport answers with a fixed 200 body and keeps a clone of every
// request it saw.
type RecordingTransport struct {
	Body []byte

	mu       sync.Mutex
	requests []*http.Request
}

// RoundTrip implements the http.RoundTripper interface
func (t *RecordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req.Clone(req.Context()))
	t.mu.Unlock()

	return NewHTTPResponse(req, http.StatusOK, t.Body), nil
}

// Requests returns the requests seen so far
func (t *RecordingTransport) Requests() []*http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]*http.Request(nil), t.requests...)
}
