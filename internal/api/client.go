package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/dweb-gateway/constant"
	libErr "github.com/LerianStudio/dweb-gateway/error"
	"github.com/LerianStudio/dweb-gateway/model"
)

// Client handles communication with the account-record lookup API
type Client struct {
	httpClient *http.Client
	url        string
	logger     log.Logger
}

// New creates a new API client posting to url
func New(url string, httpClient *http.Client, logger log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cn.DefaultHTTPTimeoutSeconds * time.Second,
		}
	}

	return &Client{
		httpClient: httpClient,
		url:        url,
		logger:     logger,
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// Records fetches the records of account. A nil result with a nil error means
// the lookup answered without data. A non-success status is returned as an
// *libErr.APIError carrying the full response.
func (c *Client) Records(ctx context.Context, account string) (*model.RecordsData, error) {
	body, err := json.Marshal(model.LookupRequest{Account: account})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(cn.HeaderContentType, "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("Record lookup request failed for %s - error: %s", account, err.Error())
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.handleErrorResponse(account, resp)
	}

	var out model.LookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return out.Data, nil
}

// handleErrorResponse buffers a non-success response so it can be returned verbatim
func (c *Client) handleErrorResponse(account string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read error response: %w", err)
	}

	c.logger.Warnf("Record lookup for %s returned status %d", account, resp.StatusCode)

	return &libErr.APIError{
		StatusCode: resp.StatusCode,
		Msg:        fmt.Sprintf("record lookup error: %d", resp.StatusCode),
		Response: &model.Response{
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       bodyBytes,
		},
	}
}
