package managers

import (
	"context"
	"fmt"

	"github.com/idahoesports/site/internal/domain"
	"github.com/idahoesports/site/pkg/clients/sanity"

	"go.mongodb.org/mongo-driver/mongo"
)

type sanityArchiveStore struct {
	client sanity.ClientInterface
}

type SanityArchiveStoreDependencies struct {
	Client sanity.ClientInterface
}

// NewSanityArchiveStore archives submissions as contactSubmission documents.
func NewSanityArchiveStore(deps SanityArchiveStoreDependencies) domain.ArchiveStore {
	return &sanityArchiveStore{
		client: deps.Client,
	}
}

func (s *sanityArchiveStore) Name() string {
	return "sanity"
}

func (s *sanityArchiveStore) StoreSubmission(ctx context.Context, record domain.ArchiveRecord) error {
	resp, err := s.client.Create(ctx, record)
	if err != nil {
		return err
	}

	if len(resp.Results) == 0 {
		return fmt.Errorf("sanity accepted the mutation but returned no document id")
	}

	return nil
}

type mongoArchiveStore struct {
	collection *mongo.Collection
}

type MongoArchiveStoreDependencies struct {
	Client     *mongo.Client
	Database   string
	Collection string
}

// NewMongoArchiveStore archives submissions into a MongoDB collection.
func NewMongoArchiveStore(deps MongoArchiveStoreDependencies) domain.ArchiveStore {
	return &mongoArchiveStore{
		collection: deps.Client.Database(deps.Database).Collection(deps.Collection),
	}
}

func (s *mongoArchiveStore) Name() string {
	return "mongodb"
}

func (s *mongoArchiveStore) StoreSubmission(ctx context.Context, record domain.ArchiveRecord) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}
