// Package storefront executes GraphQL queries against a commerce platform's
// Storefront API.
//
// The client owns transport only: the query documents and response shapes
// belong to callers. Requests share a client-side rate limit so a burst of
// page loads stays inside the platform's request budget.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultAPIVersion = "2024-10"
	defaultRateLimit  = 20
	defaultTimeout    = 10 * time.Second

	tokenHeader = "X-Shopify-Storefront-Access-Token"
)

// Options configures a Client.
type Options struct {
	// Domain is the store host, e.g. "example.myshopify.com".
	Domain string
	// Token is the public Storefront API access token.
	Token string
	// APIVersion defaults to 2024-10.
	APIVersion string
	// RateLimit is the sustained requests per second; 0 means the default
	// and a negative value disables limiting.
	RateLimit float64
	// HTTPClient defaults to a client with a 10s timeout.
	HTTPClient *http.Client
	// Endpoint overrides the URL derived from Domain and APIVersion.
	Endpoint string
	Logger   *slog.Logger
}

// Client posts GraphQL requests to the Storefront API.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	limiter  *rate.Limiter
	log      *slog.Logger
}

// Request is one named GraphQL operation.
type Request struct {
	Name      string         `json:"operationName,omitempty"`
	Document  string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		if opts.Domain == "" {
			return nil, errors.New("storefront: domain is required")
		}
		version := opts.APIVersion
		if version == "" {
			version = defaultAPIVersion
		}
		endpoint = fmt.Sprintf("https://%s/api/%s/graphql.json", strings.TrimSuffix(opts.Domain, "/"), version)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	limit := opts.RateLimit
	if limit == 0 {
		limit = defaultRateLimit
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if limit > 0 {
		limiter = rate.NewLimiter(rate.Limit(limit), max(1, int(limit)))
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		endpoint: endpoint,
		token:    opts.Token,
		http:     httpClient,
		limiter:  limiter,
		log:      log,
	}, nil
}

// Endpoint returns the GraphQL endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Query executes req and decodes the response's data object into out.
//
// GraphQL-level errors are returned as *Error, non-2xx responses as
// *StatusError. A response with errors is never partially decoded.
func (c *Client) Query(ctx context.Context, req Request, out any) error {
	const op = "Client.Query"
	log := c.log.With("op", op, "query", req.Name)

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("storefront: %s: rate limit: %w", req.Name, err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("storefront: %s: encode request: %w", req.Name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("storefront: %s: %w", req.Name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set(tokenHeader, c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("storefront: %s: %w", req.Name, err)
	}
	defer resp.Body.Close()
	log.Debug("query complete", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Query: req.Name, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("storefront: %s: decode response: %w", req.Name, err)
	}
	if len(envelope.Errors) > 0 {
		return &Error{Query: req.Name, Errors: envelope.Errors}
	}
	if out == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("storefront: %s: decode data: %w", req.Name, err)
	}
	return nil
}
