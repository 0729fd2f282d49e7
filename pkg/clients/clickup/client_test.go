package clickup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateTask(t *testing.T) {
	var received CreateTaskRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/list/901/task", r.URL.Path)
		assert.Equal(t, "pk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"86abc","name":"Contact: Hi","url":"https://app.clickup.com/t/86abc","status":{"status":"new"}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithAPIToken("pk_test"))

	task, err := client.CreateTask(context.Background(), "901", &CreateTaskRequest{
		Name:        "Contact: Hi",
		Description: "desc",
		Priority:    3,
		Tags:        []string{"general-inquiry"},
		Status:      "NEW",
	})
	require.NoError(t, err)

	assert.Equal(t, "86abc", task.ID)
	assert.Equal(t, "https://app.clickup.com/t/86abc", task.URL)
	assert.Equal(t, "new", task.Status.Status)

	assert.Equal(t, "Contact: Hi", received.Name)
	assert.Equal(t, 3, received.Priority)
	assert.Equal(t, []string{"general-inquiry"}, received.Tags)
	assert.Equal(t, "NEW", received.Status)
}

func TestClient_CreateTask_ErrorIsNotRetried(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithAPIToken("pk_test"))

	_, err := client.CreateTask(context.Background(), "901", &CreateTaskRequest{Name: "x"})
	require.Error(t, err)

	apiErr, ok := IsClickUpError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Body)
	assert.True(t, apiErr.IsServerError())
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_CreateTask_ParsesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"err":"Token invalid","ECODE":"OAUTH_025"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.CreateTask(context.Background(), "901", &CreateTaskRequest{Name: "x"})

	apiErr, ok := IsClickUpError(err)
	require.True(t, ok)
	assert.Equal(t, "Token invalid", apiErr.Message)
	assert.Equal(t, "OAUTH_025", apiErr.Code)
	assert.True(t, apiErr.IsAuthError())
	assert.True(t, apiErr.IsClientError())
}

func TestClient_CreateTask_InvalidArguments(t *testing.T) {
	client := NewClient()

	_, err := client.CreateTask(context.Background(), "901", nil)
	assert.Error(t, err)

	_, err = client.CreateTask(context.Background(), "", &CreateTaskRequest{Name: "x"})
	assert.Error(t, err)
}

func TestClient_CreateTask_SendsConfiguredHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "site", r.Header.Get("X-Request-Source"))
		assert.Equal(t, "idahoesports-site/test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"id":"86abc"}`))
	}))
	defer server.Close()

	client := NewClient(
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithHeader("X-Request-Source", "site"),
		WithUserAgent("idahoesports-site/test"),
	)

	task, err := client.CreateTask(context.Background(), "901", &CreateTaskRequest{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "86abc", task.ID)
}

func TestClient_CreateTask_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"err":"Rate limit reached","ECODE":"APP_002"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithAPIToken("pk_test"))

	_, err := client.CreateTask(context.Background(), "901", &CreateTaskRequest{Name: "x"})

	apiErr, ok := IsClickUpError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsRateLimited())
	assert.True(t, apiErr.IsClientError())
	assert.False(t, apiErr.IsAuthError())
	assert.Equal(t, "Rate limit reached", apiErr.Message)
}
