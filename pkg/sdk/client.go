package stayrec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	httpClient *http.Client
	apiKey     string
	tenant     string
	timeout    time.Duration
}

// WithHTTPClient sets a custom HTTP client. Overrides WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithAPIKey sets the Bearer token sent with every request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithTenant sets the tenant identifier sent with every request. Profiles
// and visit history are scoped per tenant.
func WithTenant(tenant string) Option {
	return optionFunc(func(c *clientConfig) {
		c.tenant = tenant
	})
}

// WithTimeout sets the per-request timeout. Default: 10s.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}

// Client is the stayrec SDK entry point.
type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
	tenant  string
}

// New creates a stayrec Client for the given service base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("stayrec: base URL required")
	}

	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		apiKey:  cfg.apiKey,
		tenant:  cfg.tenant,
	}, nil
}

// ForUser returns the personalized hybrid ranking for a guest. limit <= 0
// uses the server default.
func (c *Client) ForUser(ctx context.Context, userID int64, limit int) ([]Recommendation, error) {
	var resp userRecommendationsResponse
	path := fmt.Sprintf("/api/v1/recommendations/user/%d%s", userID, limitQuery(limit))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// Popular returns the top-rated catalog activities.
func (c *Client) Popular(ctx context.Context, limit int) ([]Recommendation, error) {
	var resp typedRecommendationsResponse
	path := "/api/v1/recommendations/popular" + limitQuery(limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// Similar returns the activities most similar to the given one by
// description similarity.
func (c *Client) Similar(ctx context.Context, activityID int64, limit int) ([]Recommendation, error) {
	var resp similarRecommendationsResponse
	path := fmt.Sprintf("/api/v1/recommendations/similar/%d%s", activityID, limitQuery(limit))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// HotelCatalog returns the classified catalog for one hotel.
func (c *Client) HotelCatalog(ctx context.Context, hotelID int64) ([]Activity, error) {
	var resp catalogResponse
	path := fmt.Sprintf("/api/v1/catalog/hotel/%d", hotelID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Activities, nil
}

// Categories returns the fixed category taxonomy with examples from the
// live catalog.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp categoriesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// RebuildCatalog triggers a re-index of the activity catalog.
func (c *Client) RebuildCatalog(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/catalog/rebuild", nil, nil)
}

// RecordVisit appends an activity to a guest's visit history.
func (c *Client) RecordVisit(ctx context.Context, userID, activityID int64) error {
	path := fmt.Sprintf("/api/v1/users/%d/history", userID)
	return c.doJSON(ctx, http.MethodPost, path, visitRequest{ActivityID: activityID}, nil)
}

// Health returns the service health report. A degraded service answers
// with 503 and a populated report; that is returned without error.
func (c *Client) Health(ctx context.Context) (Health, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return Health{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Health{}, fmt.Errorf("stayrec: health: %w", err)
	}
	defer resp.Body.Close()

	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, fmt.Errorf("stayrec: decode health response: %w", err)
	}
	return h, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("stayrec: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("stayrec: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.tenant != "" {
		req.Header.Set("X-Tenant-ID", c.tenant)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("stayrec: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("stayrec: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}
	return apiErr
}

func limitQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	return "?limit=" + strconv.Itoa(limit)
}
