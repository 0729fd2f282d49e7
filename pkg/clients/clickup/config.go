package clickup

import (
	"net/http"
	"time"
)

// ClientConfig holds the configuration for the ClickUp client
type ClientConfig struct {
	BaseURL        string
	APIToken       string
	HTTPClient     *http.Client
	Timeout        time.Duration
	DefaultHeaders map[string]string
	UserAgent      string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:        "https://api.clickup.com/api/v2",
		Timeout:        30 * time.Second,
		DefaultHeaders: map[string]string{"Content-Type": "application/json"},
		UserAgent:      "idahoesports-site/1.0",
	}
}

// ClientOption is a function that modifies ClientConfig
type ClientOption func(*ClientConfig)

// WithBaseURL sets the base URL of the ClickUp API
func WithBaseURL(baseURL string) ClientOption {
	return func(c *ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithAPIToken sets the personal API token sent in the Authorization header
func WithAPIToken(token string) ClientOption {
	return func(c *ClientConfig) {
		c.APIToken = token
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *ClientConfig) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = timeout
	}
}

// WithHeader adds a default header to all requests
func WithHeader(key, value string) ClientOption {
	return func(c *ClientConfig) {
		if c.DefaultHeaders == nil {
			c.DefaultHeaders = make(map[string]string)
		}
		c.DefaultHeaders[key] = value
	}
}

// WithUserAgent sets the user agent string
func WithUserAgent(userAgent string) ClientOption {
	return func(c *ClientConfig) {
		c.UserAgent = userAgent
	}
}
