// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Responses above this size are cut off before decoding.
const maxResponseBodySize = 1 << 20 // 1MB

// Client queries the homework review API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Logger
}

// NewClient creates a Client for the given endpoint. The OAuth token is sent
// with every request; the http.Client owns the request timeout.
func NewClient(endpoint, token string, httpClient *http.Client, logger *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}
}

// FetchStatuses performs one authenticated GET against the review endpoint
// and returns the raw JSON payload. A zero fromDate means "from now".
// Failures are logged here and returned as one of *AccessError,
// *EndpointError or *DecodeError; retrying is the caller's concern.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (json.RawMessage, error) {
	if fromDate == 0 {
		fromDate = time.Now().Unix()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := url.Values{}
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		accessErr := &AccessError{Err: err}
		c.logger.Error(accessErr)
		return nil, accessErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		endpointErr := &EndpointError{Code: resp.StatusCode}
		c.logger.Error(endpointErr)
		return nil, endpointErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		accessErr := &AccessError{Err: fmt.Errorf("read body: %w", err)}
		c.logger.Error(accessErr)
		return nil, accessErr
	}

	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		decodeErr := &DecodeError{Err: err}
		c.logger.Error(decodeErr)
		return nil, decodeErr
	}
	return payload, nil
}
