package sanity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Create(t *testing.T) {
	var received map[string][]map[string]map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2024-01-01/data/mutate/production", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("returnIds"))
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_, _ = w.Write([]byte(`{"transactionId":"tx1","results":[{"id":"doc1","operation":"create"}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithProjectID("abc123"), WithToken("sk_test"))

	resp, err := client.Create(context.Background(), map[string]any{
		"_type": "contactSubmission",
		"name":  "A",
	})
	require.NoError(t, err)

	assert.Equal(t, "tx1", resp.TransactionID)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "doc1", resp.Results[0].ID)

	require.Len(t, received["mutations"], 1)
	assert.Equal(t, "contactSubmission", received["mutations"][0]["create"]["_type"])
}

func TestClient_Create_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"description":"Insufficient permissions","type":"mutationError"}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithProjectID("abc123"))

	_, err := client.Create(context.Background(), map[string]any{"_type": "x"})
	require.Error(t, err)

	apiErr, ok := IsSanityError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "mutationError", apiErr.Message)
	assert.Equal(t, "Insufficient permissions", apiErr.Description)
	assert.True(t, apiErr.IsAuthError())
}

func TestClient_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2024-01-01/data/query/staging", r.URL.Path)
		assert.Equal(t, `*[_type == $type]`, r.URL.Query().Get("query"))
		assert.Equal(t, `"championshipResult"`, r.URL.Query().Get("$type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"ms":3,"query":"*","result":[{"_id":"a","year":2024},{"_id":"b","year":2023}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithProjectID("abc123"), WithDataset("staging"))

	var docs []struct {
		ID   string `json:"_id"`
		Year int    `json:"year"`
	}

	err := client.Query(context.Background(), `*[_type == $type]`, map[string]any{"type": "championshipResult"}, &docs)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, 2023, docs[1].Year)
}

func TestClient_Query_CustomHTTPClient(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "idahoesports-site/test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"result":[{"_id":"a"}]}`))
	}))
	defer server.Close()

	client := NewClient(
		WithBaseURL(server.URL),
		WithProjectID("abc123"),
		WithHTTPClient(server.Client()),
		WithUserAgent("idahoesports-site/test"),
	)

	var docs []map[string]any
	require.NoError(t, client.Query(context.Background(), "*", nil, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0]["_id"])
}

func TestClient_Query_StringError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"statusCode":401,"error":"Unauthorized","message":"Session not found"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithProjectID("abc123"))

	err := client.Query(context.Background(), "*", nil, &[]any{})

	apiErr, ok := IsSanityError(err)
	require.True(t, ok)
	assert.Equal(t, "Session not found", apiErr.Message)
	assert.Equal(t, "Unauthorized", apiErr.Description)
}

func TestClient_Endpoint(t *testing.T) {
	client := NewClient(WithProjectID("abc123"), WithAPIVersion("v2021-10-21"))

	assert.Equal(t, "https://abc123.api.sanity.io/v2021-10-21/data/mutate/production", client.endpoint(false, "mutate"))
	assert.Equal(t, "https://abc123.apicdn.sanity.io/v2021-10-21/data/query/production", client.endpoint(true, "query"))
}

func TestClient_ImageURL(t *testing.T) {
	client := NewClient(WithProjectID("abc123"))

	tests := []struct {
		name     string
		client   *Client
		ref      string
		width    int
		height   int
		expected string
		wantErr  bool
	}{
		{
			name:     "resized",
			ref:      "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg",
			width:    80,
			height:   80,
			expected: "https://cdn.sanity.io/images/abc123/production/Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000.jpg?h=80&w=80",
		},
		{
			name:     "no resize",
			ref:      "image-abc-60x60-png",
			expected: "https://cdn.sanity.io/images/abc123/production/abc-60x60.png",
		},
		{
			name:     "custom image host",
			client:   NewClient(WithProjectID("abc123"), WithImageBaseURL("https://images.example.com/")),
			ref:      "image-abc-60x60-png",
			width:    30,
			expected: "https://images.example.com/images/abc123/production/abc-60x60.png?w=30",
		},
		{name: "not an image", ref: "file-abc-pdf", wantErr: true},
		{name: "empty", ref: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := client
			if tt.client != nil {
				c = tt.client
			}

			got, err := c.ImageURL(tt.ref, tt.width, tt.height)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImageRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
