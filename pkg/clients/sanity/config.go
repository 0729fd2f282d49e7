package sanity

import (
	"net/http"
	"time"
)

// ClientConfig holds the configuration for the Sanity client
type ClientConfig struct {
	ProjectID  string
	Dataset    string
	Token      string
	APIVersion string
	UseCDN     bool

	// BaseURL overrides the project API host, mostly for tests.
	BaseURL string
	// ImageBaseURL is the image CDN host.
	ImageBaseURL string

	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Dataset:      "production",
		APIVersion:   "2024-01-01",
		ImageBaseURL: "https://cdn.sanity.io",
		Timeout:      30 * time.Second,
		UserAgent:    "idahoesports-site/1.0",
	}
}

// ClientOption is a function that modifies ClientConfig
type ClientOption func(*ClientConfig)

// WithProjectID sets the Sanity project id
func WithProjectID(projectID string) ClientOption {
	return func(c *ClientConfig) {
		c.ProjectID = projectID
	}
}

// WithDataset sets the dataset, "production" when empty
func WithDataset(dataset string) ClientOption {
	return func(c *ClientConfig) {
		if dataset != "" {
			c.Dataset = dataset
		}
	}
}

// WithToken sets the API token used for writes and private datasets
func WithToken(token string) ClientOption {
	return func(c *ClientConfig) {
		c.Token = token
	}
}

// WithAPIVersion sets the dated API version, e.g. "2024-01-01"
func WithAPIVersion(version string) ClientOption {
	return func(c *ClientConfig) {
		if version != "" {
			c.APIVersion = version
		}
	}
}

// WithCDN routes queries through the API CDN
func WithCDN(useCDN bool) ClientOption {
	return func(c *ClientConfig) {
		c.UseCDN = useCDN
	}
}

// WithBaseURL overrides the API host
func WithBaseURL(baseURL string) ClientOption {
	return func(c *ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithImageBaseURL overrides the image CDN host
func WithImageBaseURL(baseURL string) ClientOption {
	return func(c *ClientConfig) {
		c.ImageBaseURL = baseURL
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

// WithUserAgent sets the user agent string
func WithUserAgent(userAgent string) ClientOption {
	return func(c *ClientConfig) {
		c.UserAgent = userAgent
	}
}
