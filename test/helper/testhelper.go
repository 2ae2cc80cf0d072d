// Package helper provides test utilities shared by the gateway packages
package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestServer is a wrapper around httptest.Server that counts the requests it served
type TestServer struct {
	*httptest.Server
	hits atomic.Int32
}

// NewTestServer creates a new test server with the given handler, closed on test cleanup
func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	t.Helper()

	ts := &TestServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.hits.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	return ts
}

// Hits returns the number of requests served so far
func (ts *TestServer) Hits() int {
	return int(ts.hits.Load())
}

// AssertRequestMethod asserts that the request has the expected method
func AssertRequestMethod(t *testing.T, req *http.Request, expectedMethod string) {
	t.Helper()
	require.Equal(t, expectedMethod, req.Method, "unexpected HTTP method")
}

// AssertHeader asserts that the request has the expected header
func AssertHeader(t *testing.T, req *http.Request, key, expectedValue string) {
	t.Helper()
	require.Equal(t, expectedValue, req.Header.Get(key), "unexpected header value")
}

// WriteJSON writes body as a JSON response with the given status
func WriteJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body != nil {
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}
}
