package storefront

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/httpclient"
)

const defaultRequestTimeout = 15 * time.Second

// Logger defines the logging surface the client relies on.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, interface{})  {}
func (noopLogger) DebugObj(string, string, interface{}) {}
func (noopLogger) WarnObj(string, string, interface{})  {}
func (noopLogger) ErrorObj(string, string, interface{}) {}

// Client talks to the storefront API. The zero value is not usable; construct
// instances with New. A Client holds no per-call state and is safe for
// concurrent use as long as its underlying transport is.
type Client struct {
	http    httpclient.Client
	baseURL string
	log     Logger
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	http    httpclient.Client
	baseURL string
	timeout time.Duration
	log     Logger
}

// WithHTTPClient injects a transport. Timeout configuration then belongs to
// the injected client.
func WithHTTPClient(c httpclient.Client) Option {
	return func(o *options) { o.http = c }
}

// WithBaseURL overrides the API root, mainly for tests and proxies.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout sets the request timeout of the default transport. It has no
// effect when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(log Logger) Option {
	return func(o *options) { o.log = log }
}

// New builds a storefront client.
func New(opts ...Option) *Client {
	o := options{
		baseURL: DefaultBaseURL,
		timeout: defaultRequestTimeout,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.http == nil {
		o.http = httpclient.NewRestyClient(o.timeout)
	}
	if o.log == nil {
		o.log = noopLogger{}
	}
	return &Client{http: o.http, baseURL: o.baseURL, log: o.log}
}

// GetAppDetails fetches the detail record for a Steam application. The country
// code is forwarded verbatim when non-empty; pass "" for the upstream default
// region.
func (c *Client) GetAppDetails(ctx context.Context, appID int, country string) (*App, error) {
	if err := validateID("appID", appID); err != nil {
		return nil, err
	}
	body, err := c.fetch(ctx, OpAppDetails, appID, country)
	if err != nil {
		return nil, err
	}
	return decodeAppDetails(body, appID)
}

// GetPackageDetails fetches the detail record for a Steam package.
func (c *Client) GetPackageDetails(ctx context.Context, packageID int, country string) (*Package, error) {
	if err := validateID("packageID", packageID); err != nil {
		return nil, err
	}
	body, err := c.fetch(ctx, OpPackageDetails, packageID, country)
	if err != nil {
		return nil, err
	}
	return decodePackageDetails(body, packageID)
}

// GetFeaturedApps fetches the storefront front-page listing.
func (c *Client) GetFeaturedApps(ctx context.Context, country string) (*FeaturedApps, error) {
	body, err := c.fetch(ctx, OpFeatured, 0, country)
	if err != nil {
		return nil, err
	}
	return decodeFeatured(body)
}

// GetFeaturedCategories fetches the front-page listing grouped by category.
func (c *Client) GetFeaturedCategories(ctx context.Context, country string) ([]FeaturedCategory, error) {
	body, err := c.fetch(ctx, OpFeaturedCategories, 0, country)
	if err != nil {
		return nil, err
	}
	return decodeFeaturedCategories(body)
}

// fetch issues exactly one GET for the operation and returns the raw body.
// No retries and no caching happen at this layer.
func (c *Client) fetch(ctx context.Context, op Operation, id int, country string) ([]byte, error) {
	target, err := buildRequestURL(c.baseURL, op, id, country)
	if err != nil {
		return nil, &InvalidArgumentError{Name: "baseURL", Reason: err.Error()}
	}

	c.log.DebugObj("storefront request", "request", map[string]any{
		"operation": string(op),
		"url":       target,
	})

	resp, err := c.http.Get(ctx, target, nil)
	if err != nil {
		return nil, &TransportError{Operation: op, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.WarnObj("storefront request rejected", "response", map[string]any{
			"operation": string(op),
			"status":    resp.StatusCode(),
		})
		return nil, &TransportError{Operation: op, StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}

func validateID(name string, id int) error {
	if id <= 0 {
		return &InvalidArgumentError{
			Name:   name,
			Reason: fmt.Sprintf("must be a positive integer, got %d", id),
		}
	}
	return nil
}
