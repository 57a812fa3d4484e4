package appcatalog

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPClient wraps http.Client and rewrites every request onto the configured api url
type HTTPClient struct {
	*http.Client // Embedded client provides all http.Client methods
}

// NewHTTPClient creates a new HTTPClient for the given API URL
func NewHTTPClient(apiURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API URL %q must be absolute", apiURL)
	}

	return &HTTPClient{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &baseURLTransport{
				base: otelhttp.NewTransport(&http.Transport{
					MaxIdleConnsPerHost: 10,
				}),
				apiURL: u,
			},
		},
	}, nil
}

// baseURLTransport wraps an http.RoundTripper and points relative requests to the api
type baseURLTransport struct {
	base   http.RoundTripper
	apiURL *url.URL
}

// RoundTrip implements http.RoundTripper
func (t *baseURLTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.URL.Scheme = t.apiURL.Scheme
	req.URL.Host = t.apiURL.Host
	req.Host = t.apiURL.Host

	// If the API URL has a base path, prepend it
	if t.apiURL.Path != "" && t.apiURL.Path != "/" {
		req.URL.Path = t.apiURL.Path + req.URL.Path
	}

	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	return t.base.RoundTrip(req)
}
