package managers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/idahoesports/site/internal/domain"
	"github.com/idahoesports/site/pkg/clients/sanity"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// championshipResultsQuery returns every result, newest first.
const championshipResultsQuery = `*[_type == $type] | order(year desc, eventDate desc)`

type sanityChampionshipSource struct {
	client sanity.ClientInterface
}

type SanityChampionshipSourceDependencies struct {
	Client sanity.ClientInterface
}

func NewSanityChampionshipSource(deps SanityChampionshipSourceDependencies) domain.ChampionshipSource {
	return &sanityChampionshipSource{
		client: deps.Client,
	}
}

func (s *sanityChampionshipSource) ChampionshipResults(ctx context.Context) ([]domain.ChampionshipResult, error) {
	var results []domain.ChampionshipResult

	err := s.client.Query(ctx, championshipResultsQuery, map[string]any{
		"type": domain.ChampionshipDocumentType,
	}, &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

type cachedChampionshipSource struct {
	source domain.ChampionshipSource
	redis  redis.Cmdable
	key    string
	ttl    time.Duration
	logger zerolog.Logger
}

type CachedChampionshipSourceDependencies struct {
	Source domain.ChampionshipSource
	Redis  redis.Cmdable
	Key    string
	TTL    time.Duration
	Logger zerolog.Logger
}

// NewCachedChampionshipSource keeps the results list in Redis for TTL. Cache
// failures fall through to the wrapped source.
func NewCachedChampionshipSource(deps CachedChampionshipSourceDependencies) domain.ChampionshipSource {
	key := deps.Key
	if key == "" {
		key = "idahoesports:championship-results"
	}

	return &cachedChampionshipSource{
		source: deps.Source,
		redis:  deps.Redis,
		key:    key,
		ttl:    deps.TTL,
		logger: deps.Logger,
	}
}

func (s *cachedChampionshipSource) ChampionshipResults(ctx context.Context) ([]domain.ChampionshipResult, error) {
	cached, err := s.redis.Get(ctx, s.key).Bytes()
	switch {
	case err == nil:
		var results []domain.ChampionshipResult
		if err := json.Unmarshal(cached, &results); err == nil {
			return results, nil
		}
		s.logger.Warn().Str("key", s.key).Msg("Discarding undecodable cached championship results")
	case !errors.Is(err, redis.Nil):
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to read championship results from cache")
	}

	results, err := s.source.ChampionshipResults(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, results); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to cache championship results")
	}

	return results, nil
}

func (s *cachedChampionshipSource) store(ctx context.Context, results []domain.ChampionshipResult) error {
	encoded, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode championship results: %w", err)
	}

	return s.redis.Set(ctx, s.key, encoded, s.ttl).Err()
}
