// Package restsource implements a datasource.Provider backed by the farm
// backend's REST API. Resource lists are cached per resource until they
// expire or an insert outdates them.
package restsource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/birkirb/loggers.v1/log"

	"github.com/Swyamk/rjagro-sub000/datasource"
)

const (
	defaultCacheTTL = 5 * time.Minute
	defaultTimeout  = 30 * time.Second

	// maxErrorBody bounds how much of a failed answer ends up in a StatusError.
	maxErrorBody = 512
)

// Config configures a Client.
type Config struct {
	// BaseURL is the backend root, e.g. "http://127.0.0.1:8000".
	BaseURL string
	// Token is sent verbatim in the Authorization header, if not empty.
	Token string
	// CacheTTL is how long fetched lists are served from cache.
	CacheTTL time.Duration
	// Timeout bounds every single request.
	Timeout time.Duration
	// HTTPClient replaces the default client, e.g. in tests.
	HTTPClient *http.Client
	// Registerer receives the client metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// Client talks to the backend list, insert and admin endpoints.
type Client struct {
	baseURL    *url.URL
	token      string
	timeout    time.Duration
	httpClient *http.Client
	cache      *cache.Cache
	metrics    *Metrics
}

// Approval is the payload approving a batch requirement. The backend
// allocates AllocatedQty from inventory in the same step.
type Approval struct {
	RequirementID  int64   `json:"requirement_id"`
	AllocatedQty   float64 `json:"allocated_qty"`
	AllocationDate string  `json:"allocation_date"`
	AllocatedBy    int64   `json:"allocated_by"`
}

// NewClient creates a Client from config.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("backend base url is required")
	}

	baseURL, err := url.Parse(strings.TrimSuffix(config.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url %s: %w", config.BaseURL, err)
	}

	if config.CacheTTL == 0 {
		config.CacheTTL = defaultCacheTTL
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	metrics, err := NewMetrics(config.Registerer)
	if err != nil {
		return nil, err
	}

	log.WithFields(
		"baseURL", baseURL.String(),
		"cacheTTL", config.CacheTTL,
		"token", config.Token != "",
	).Debug("Backend client initialized")

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		timeout:    config.Timeout,
		httpClient: httpClient,
		cache:      cache.New(config.CacheTTL, config.CacheTTL*2),
		metrics:    metrics,
	}, nil
}

// Fetch returns the full list of resource as flat records.
func (c *Client) Fetch(ctx context.Context, resource string) ([]datasource.Record, error) {
	var records []datasource.Record
	if err := c.FetchInto(ctx, resource, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// FetchInto decodes the full list of resource into target, which should
// point to a slice of records or entities.
func (c *Client) FetchInto(ctx context.Context, resource string, target interface{}) error {
	r, err := LookupResource(resource)
	if err != nil {
		return fmt.Errorf("%w: %s", err, resource)
	}

	body, err := c.list(ctx, r.Key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("cannot decode %s: %w", r.Key, err)
	}

	return nil
}

func (c *Client) list(ctx context.Context, key string) ([]byte, error) {
	if cached, found := c.cache.Get(key); found {
		if body, ok := cached.([]byte); ok {
			c.metrics.recordCache(key, true)
			log.WithField("resource", key).Debug("List cache hit")
			return body, nil
		}
	}

	c.metrics.recordCache(key, false)
	log.WithField("resource", key).Debug("List cache miss")

	start := time.Now()
	body, err := c.do(ctx, http.MethodGet, "getall/"+key, nil)
	c.metrics.recordFetch(key, err)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, body, cache.DefaultExpiration)

	log.WithFields(
		"resource", key,
		"time", time.Since(start),
		"bytes", len(body),
	).Info("List fetched")

	return body, nil
}

// Insert posts payload as a new record of resource, and invalidates every
// list the insert changes.
func (c *Client) Insert(ctx context.Context, resource string, payload interface{}) error {
	r, err := LookupResource(resource)
	if err != nil {
		return fmt.Errorf("%w: %s", err, resource)
	}

	if r.InsertPath == "" {
		return fmt.Errorf("resource %s does not accept inserts", resource)
	}

	if _, err := c.do(ctx, http.MethodPost, "insert/"+r.InsertPath, payload); err != nil {
		return err
	}

	c.Invalidate(append([]string{r.Key}, r.Invalidates...)...)

	return nil
}

// ApproveRequirement approves a batch requirement, allocating stock to it.
func (c *Client) ApproveRequirement(ctx context.Context, approval Approval) error {
	if _, err := c.do(ctx, http.MethodPost, "admin/approve_batch_requirement", approval); err != nil {
		return err
	}

	c.Invalidate(approvalInvalidates...)

	return nil
}

// DeclineRequirement declines a batch requirement.
func (c *Client) DeclineRequirement(ctx context.Context, requirementID int64) error {
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("admin/decline_batch_requirement/%d", requirementID), nil); err != nil {
		return err
	}

	c.Invalidate("batch_requirements")

	return nil
}

// Invalidate drops the cached lists of keys.
func (c *Client) Invalidate(keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}

	log.WithField("resources", keys).Debug("Invalidated lists")
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL.JoinPath(path).String()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("cannot encode request to %s: %w", target, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithFields("method", method, "url", target, "error", err).Warn("Backend request failed")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read answer of %s: %w", target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := strings.TrimSpace(string(respBody))
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}

		log.WithFields("method", method, "url", target, "status", resp.StatusCode).Warn("Backend answered with error")

		return nil, &StatusError{Method: method, URL: target, Code: resp.StatusCode, Body: excerpt}
	}

	return respBody, nil
}
