package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	cn "github.com/LerianStudio/dweb-gateway/constant"
	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/LerianStudio/dweb-gateway/test/helper"
	"github.com/LerianStudio/dweb-gateway/test/helper/testlogger"
	"github.com/LerianStudio/dweb-gateway/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inbound(t *testing.T, method, rawURL string, body []byte) *model.Request {
	t.Helper()

	u, err := url.Parse(rawURL)
	require.NoError(t, err)

	return &model.Request{
		Method: method,
		URL:    u,
		Header: http.Header{
			"Host":          []string{u.Host},
			"Accept":        []string{"text/html"},
			"Connection":    []string{"keep-alive"},
			"Cookie":        []string{"session=secret"},
			"Authorization": []string{"Bearer token"},
			"Range":         []string{"bytes=0-4"},
		},
		Body: body,
	}
}

func newClient(t *testing.T, httpClient *http.Client) *Client {
	t.Helper()

	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Second}
	}

	c, err := New(httpClient, testlogger.New())
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return c
}

func TestFetch_HonorsCacheHint(t *testing.T) {
	ts := helper.NewTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<h1>hi</h1>")
	}))

	c := newClient(t, nil)
	target := ts.URL + "/ipfs/cid/index.html"

	for i := 0; i < 3; i++ {
		res, err := c.Fetch(context.Background(), target, CacheHint{TTL: 15 * time.Minute, Key: target})
		require.NoError(t, err)
		helper.AssertResponse(t, res, http.StatusOK, "<h1>hi</h1>")
		assert.Equal(t, "text/html", res.Header.Get("Content-Type"))
	}

	assert.Equal(t, 1, ts.Hits(), "hinted responses are served from the cache")
}

func TestFetch_SendsPlainGet(t *testing.T) {
	transport := &mocks.RecordingTransport{Body: []byte("content")}
	c := newClient(t, &http.Client{Transport: transport})

	res, err := c.Fetch(context.Background(), "https://ipfs.example/ipfs/cid/", CacheHint{})
	require.NoError(t, err)
	helper.AssertResponse(t, res, http.StatusOK, "content")

	requests := transport.Requests()
	require.Len(t, requests, 1)

	sent := requests[0]
	assert.Equal(t, http.MethodGet, sent.Method)
	assert.Equal(t, "ipfs.example", sent.URL.Host)
	assert.Empty(t, sent.Header.Get("Cookie"))
	assert.Empty(t, sent.Header.Get("Authorization"))
	assert.Empty(t, sent.Header.Get("Range"))
	assert.Empty(t, sent.Header.Get(cn.HeaderForwardedBy))
}

func TestFetch_OnlyCompleteResponsesAreCached(t *testing.T) {
	statuses := []int{http.StatusNotFound, http.StatusPartialContent, http.StatusNotModified, http.StatusNoContent}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			ts := helper.NewTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			c := newClient(t, nil)

			for i := 0; i < 2; i++ {
				res, err := c.Fetch(context.Background(), ts.URL, CacheHint{TTL: time.Minute, Key: ts.URL})
				require.NoError(t, err)
				assert.Equal(t, status, res.StatusCode)
			}

			assert.Equal(t, 2, ts.Hits())
		})
	}
}

func TestForward_KeepsRequestAndMarksIt(t *testing.T) {
	ts := helper.NewTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		assert.Equal(t, "session=secret", r.Header.Get("Cookie"))
		assert.Equal(t, "1", r.Header.Get(cn.HeaderForwardedBy))
		assert.Empty(t, r.Header.Get("Connection"))

		_, _ = io.WriteString(w, r.Method+" "+r.Host+" "+r.URL.RequestURI()+" "+string(body))
	}))

	c := newClient(t, nil)
	in := inbound(t, http.MethodPost, "https://bit.cc/about?x=1", []byte("a=1"))

	res, err := c.Forward(context.Background(), ts.URL+"/about?x=1", in)
	require.NoError(t, err)
	helper.AssertResponse(t, res, http.StatusOK, "POST bit.cc /about?x=1 a=1")
}

func TestFetch_TransportError(t *testing.T) {
	c := newClient(t, mocks.ConnectionRefusedClient())

	_, err := c.Fetch(context.Background(), "https://ipfs.example/", CacheHint{})
	assert.ErrorIs(t, err, mocks.ErrConnectionRefused)
}
