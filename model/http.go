package model

import (
	"net/http"
	"net/url"
)

// Request is a buffered inbound request, detached from the server framework.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// CacheKey identifies the request in the response cache.
func (r *Request) CacheKey() string {
	return r.Method + " " + r.URL.String()
}

// Response is a fully buffered HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Clone returns a deep copy so cached and returned responses never share state.
func (r *Response) Clone() *Response {
	body := make([]byte, len(r.Body))
	copy(body, r.Body)

	return &Response{
		StatusCode: r.StatusCode,
		Header:     r.Header.Clone(),
		Body:       body,
	}
}
