package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
	"github.com/felipesilva4/desafio-aiqfome/pkg/logger"
)

const requestTimeout = 3 * time.Second

// HTTPClient looks up single products on the external catalog API
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a catalog client for the given base URL
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// FetchProduct gets a product by ID from GET {baseURL}/products/{id}.
//
// A non-2xx status or an empty body means the product does not exist and
// returns ErrProductNotFound. Transport failures (timeout, connection
// refused) wrap ErrUpstreamUnavailable so callers can tell a missing
// product from a degraded catalog. Single attempt per call, no retries.
func (c *HTTPClient) FetchProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamRequests.WithLabelValues("not_found").Inc()
		logger.Debug(ctx).
			Int64("product_id", productID).
			Int("status", resp.StatusCode).
			Msg("Catalog returned non-success status")
		return nil, domain.ErrProductNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	// The catalog replies 200 with an empty body for unknown products
	if len(bytes.TrimSpace(body)) == 0 {
		upstreamRequests.WithLabelValues("not_found").Inc()
		return nil, domain.ErrProductNotFound
	}

	var product domain.Product
	if err := json.Unmarshal(body, &product); err != nil {
		upstreamRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to decode product %d: %w", productID, err)
	}

	upstreamRequests.WithLabelValues("ok").Inc()
	return &product, nil
}
