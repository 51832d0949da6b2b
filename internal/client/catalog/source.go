// Package catalog fetches the product list from the remote catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

// Source is the one operation the storefront needs from a catalog.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
}

// APIError is returned for a non-2xx catalog response.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error: status=%d body=%s", e.StatusCode, string(e.Body))
}

// response is a fully read HTTP response, so retried attempts never leak
// bodies.
type response struct {
	status int
	body   []byte
}

// HTTPSource reads products from GET <baseURL>/products.
type HTTPSource struct {
	client   *http.Client
	baseURL  string
	pipeline failsafe.Executor[*response]
}

// Options tune HTTPSource. Zero values fall back to defaults.
type Options struct {
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

// NewHTTPSource builds a Source for baseURL. Transport errors, 429 and 5xx
// responses are retried with exponential backoff.
func NewHTTPSource(baseURL string, opts Options) *HTTPSource {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 200 * time.Millisecond
	}

	retryPolicy := retrypolicy.NewBuilder[*response]().
		HandleIf(func(resp *response, err error) bool {
			if err != nil {
				return true
			}
			return resp.status >= 500 || resp.status == http.StatusTooManyRequests
		}).
		WithBackoff(opts.RetryDelay, 10*opts.RetryDelay).
		WithMaxRetries(opts.MaxAttempts - 1).
		Build()

	return &HTTPSource{
		client:   &http.Client{Timeout: opts.Timeout},
		baseURL:  strings.TrimRight(baseURL, "/"),
		pipeline: failsafe.With[*response](retryPolicy),
	}
}

// FetchAll returns the catalog in the order the API lists it. Any failure is
// wrapped in common.ErrCatalogUnavailable.
func (s *HTTPSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	resp, err := s.pipeline.WithContext(ctx).Get(func() (*response, error) {
		return s.get(ctx, "/products")
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, err)
	}
	if resp.status < 200 || resp.status >= 300 {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, &APIError{StatusCode: resp.status, Body: resp.body})
	}

	var products []models.Product
	if err := json.Unmarshal(resp.body, &products); err != nil {
		return nil, fmt.Errorf("%w: decode products: %w", common.ErrCatalogUnavailable, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *HTTPSource) get(ctx context.Context, path string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &response{status: resp.StatusCode, body: body}, nil
}
