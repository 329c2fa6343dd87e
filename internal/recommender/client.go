// Package recommender provides the HTTP client for the remote
// similarity-based recommendation service.
package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/httpclient"
)

// HTTPDoer is the interface for executing HTTP requests.
// Both httpclient.Client and httpclient.CircuitBreakerClient satisfy this.
type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// CircuitOpenFallback is a fallback function for the recommender circuit
// breaker. When the circuit is open, it returns a structured error instead
// of letting the raw ErrCircuitOpen propagate.
func CircuitOpenFallback(_ context.Context, _ error) (*http.Response, error) {
	return nil, apperrors.ServiceUnavailable("recommendation service is temporarily unavailable")
}

// Client calls the recommendation service over HTTP. The service exposes a
// single endpoint: POST /recommend with a product id, returning a ranked
// JSON array of related product ids.
type Client struct {
	httpClient HTTPDoer
	baseURL    string
}

// NewClient creates a recommendation service client. baseURL is the service
// root without a trailing slash, e.g. "http://recommender:5000".
func NewClient(httpClient HTTPDoer, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

type recommendRequest struct {
	ProductID string `json:"product_id"`
}

// RelatedIDs returns the ranked product ids the service judges similar to
// productID. Transport failures, an open circuit breaker, and non-2xx
// responses are returned as errors; callers decide whether to degrade.
func (c *Client) RelatedIDs(ctx context.Context, productID string) ([]string, error) {
	body, err := json.Marshal(recommendRequest{ProductID: productID})
	if err != nil {
		return nil, fmt.Errorf("marshal recommend request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create recommend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call recommendation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "recommender")
	}

	var ids []string
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("decode recommend response: %w", err)
	}

	return ids, nil
}
