package initialization

import (
	"context"
	"testing"
	"time"

	"github.com/idahoesports/site/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSiteDependencies_Unconfigured(t *testing.T) {
	container := NewSiteContainer(&config.Config{
		ArchiveBackend:    config.ArchiveBackendNone,
		HTTPClientTimeout: time.Second,
	})

	deps, err := container.BuildSiteDependencies(context.Background())
	require.NoError(t, err)
	defer deps.Close(context.Background())

	assert.NotNil(t, deps.Dispatcher)
	assert.NotNil(t, deps.ContactController)
	assert.NotNil(t, deps.ChampionsController)
	assert.Nil(t, deps.Champions)

	for _, integration := range container.Integrations() {
		assert.False(t, integration.Configured, integration.Name)
	}
}

func TestBuildSiteDependencies_Configured(t *testing.T) {
	container := NewSiteContainer(&config.Config{
		HTTPClientTimeout: time.Second,
		ClickUpAPIToken:   "pk",
		ClickUpListID:     "list",
		ClickUpAPIURL:     "https://api.clickup.com/api/v2",
		SanityProjectID:   "proj",
		SanityDataset:     "production",
		SanityToken:       "sk",
		SanityAPIVersion:  "2024-01-01",
		ArchiveBackend:    config.ArchiveBackendSanity,
		ResendAPIKey:      "re",
		NotifyFrom:        "site@idahoesports.gg",
		NotifyTo:          "staff@idahoesports.gg",
		RedisURL:          "redis://localhost:6379/0",
		ChampionsCacheTTL: time.Minute,
	})

	deps, err := container.BuildSiteDependencies(context.Background())
	require.NoError(t, err)
	defer deps.Close(context.Background())

	assert.NotNil(t, deps.Champions)
	assert.Len(t, deps.closers, 1)

	for _, integration := range container.Integrations() {
		assert.True(t, integration.Configured, integration.Name)
	}
}

func TestBuildSiteDependencies_InvalidRedisURL(t *testing.T) {
	container := NewSiteContainer(&config.Config{
		HTTPClientTimeout: time.Second,
		SanityProjectID:   "proj",
		ArchiveBackend:    config.ArchiveBackendNone,
		RedisURL:          "not-a-url",
	})

	_, err := container.BuildSiteDependencies(context.Background())
	assert.ErrorContains(t, err, "REDIS_URL")
}
