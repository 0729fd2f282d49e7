package clickup

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

// ClientInterface defines the ClickUp operations used by the site
type ClientInterface interface {
	CreateTask(ctx context.Context, listID string, req *CreateTaskRequest) (*Task, error)
}

// Client talks to the ClickUp REST API v2
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new ClickUp client with the given options
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

// CreateTask creates a task in the given list. The request is sent once; a
// non-2xx response is returned as *Error carrying the status and raw body.
func (c *Client) CreateTask(ctx context.Context, listID string, req *CreateTaskRequest) (*Task, error) {
	if req == nil {
		return nil, fmt.Errorf("create task request cannot be nil")
	}

	if listID == "" {
		return nil, fmt.Errorf("list id cannot be empty")
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/list/"+url.PathEscape(listID)+"/task", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	var task Task

	if err := c.handleResponse(resp, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var requestBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(bodyBytes)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.config.DefaultHeaders {
		req.Header.Set(key, value)
	}

	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	// ClickUp personal tokens are sent as-is, without a scheme.
	if c.config.APIToken != "" {
		req.Header.Set("Authorization", c.config.APIToken)
	}

	return c.httpClient.Do(req)
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			StatusCode: resp.StatusCode,
			Message:    "API error",
			Body:       string(body),
		}

		var errorResponse errorResponse
		if json.Unmarshal(body, &errorResponse) == nil && errorResponse.Err != "" {
			apiErr.Message = errorResponse.Err
			apiErr.Code = errorResponse.Code
		}

		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
