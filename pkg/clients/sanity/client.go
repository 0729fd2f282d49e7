package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ClientInterface defines the Sanity operations used by the site
type ClientInterface interface {
	Create(ctx context.Context, document any) (*MutateResponse, error)
	Query(ctx context.Context, query string, params map[string]any, result any) error
	ImageURL(ref string, width, height int) (string, error)
}

// Client talks to the Sanity HTTP API
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new Sanity client with the given options
func NewClient(options ...ClientOption) *Client {
	config := DefaultConfig()

	for _, option := range options {
		option(config)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// Create stores a new document. The document must carry a _type and may carry an _id.
func (c *Client) Create(ctx context.Context, document any) (*MutateResponse, error) {
	if document == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	body, err := json.Marshal(mutateRequest{
		Mutations: []Mutation{{Create: document}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mutation: %w", err)
	}

	endpoint := c.endpoint(false, "mutate") + "?returnIds=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var response MutateResponse

	if err := c.do(req, &response); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return &response, nil
}

// Query runs a GROQ query and decodes the result field into result.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, result any) error {
	values := url.Values{}
	values.Set("query", query)

	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode query parameter %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := c.endpoint(c.config.UseCDN, "query") + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	var response queryResponse

	if err := c.do(req, &response); err != nil {
		return fmt.Errorf("failed to run query: %w", err)
	}

	if result == nil || len(response.Result) == 0 {
		return nil
	}

	if err := json.Unmarshal(response.Result, result); err != nil {
		return fmt.Errorf("failed to decode query result: %w", err)
	}

	return nil
}

// ImageURL builds a CDN URL for an image asset reference of the form
// image-<id>-<width>x<height>-<format>, resized to width x height when non-zero.
func (c *Client) ImageURL(ref string, width, height int) (string, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" || !strings.Contains(parts[2], "x") {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageRef, ref)
	}

	id, dimensions, format := parts[1], parts[2], parts[3]

	imageURL := fmt.Sprintf("%s/images/%s/%s/%s-%s.%s",
		strings.TrimRight(c.config.ImageBaseURL, "/"),
		c.config.ProjectID,
		c.config.Dataset,
		id,
		dimensions,
		format,
	)

	values := url.Values{}
	if width > 0 {
		values.Set("w", fmt.Sprint(width))
	}
	if height > 0 {
		values.Set("h", fmt.Sprint(height))
	}

	if len(values) > 0 {
		imageURL += "?" + values.Encode()
	}

	return imageURL, nil
}

func (c *Client) endpoint(useCDN bool, operation string) string {
	base := c.config.BaseURL
	if base == "" {
		host := "api.sanity.io"
		if useCDN {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", c.config.ProjectID, host)
	}

	return fmt.Sprintf("%s/v%s/data/%s/%s",
		strings.TrimRight(base, "/"),
		strings.TrimPrefix(c.config.APIVersion, "v"),
		operation,
		url.PathEscape(c.config.Dataset),
	)
}

func (c *Client) do(req *http.Request, result any) error {
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func parseError(statusCode int, body []byte) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       string(body),
	}

	var response errorResponse
	if json.Unmarshal(body, &response) != nil {
		return apiErr
	}

	if response.Message != "" {
		apiErr.Message = response.Message
	}

	var detail errorDetail
	var plain string

	switch {
	case json.Unmarshal(response.Error, &detail) == nil && detail.Description != "":
		apiErr.Description = detail.Description
		if detail.Type != "" && response.Message == "" {
			apiErr.Message = detail.Type
		}
	case json.Unmarshal(response.Error, &plain) == nil && plain != "":
		if response.Message == "" {
			apiErr.Message = plain
		} else {
			apiErr.Description = plain
		}
	}

	return apiErr
}
