package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://dev.azure.com/acme/", 30*time.Second)
//	resp, err := client.R().Get("_apis/projects")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL. Every request is
// bounded by timeout (zero disables the bound), sends and accepts JSON, and
// does not follow redirects: a redirect from the issue tracker means the
// credential was rejected and must be surfaced as such.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &HTTPClient{Client: client}
}

// WithBasicAuth sets a pre-encoded Basic credential on every request.
func (c *HTTPClient) WithBasicAuth(encoded string) *HTTPClient {
	c.SetHeader("Authorization", "Basic "+encoded)
	return c
}
