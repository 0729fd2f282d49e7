package initialization

import (
	"context"
	"fmt"

	"github.com/idahoesports/site/internal/champions"
	"github.com/idahoesports/site/internal/classifier"
	"github.com/idahoesports/site/internal/config"
	"github.com/idahoesports/site/internal/contact"
	"github.com/idahoesports/site/internal/controllers"
	"github.com/idahoesports/site/internal/domain"
	"github.com/idahoesports/site/internal/managers"
	"github.com/idahoesports/site/internal/version"
	"github.com/idahoesports/site/pkg/clients/clickup"
	"github.com/idahoesports/site/pkg/clients/sanity"

	"github.com/redis/go-redis/v9"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SiteDependencies struct {
	Dispatcher          *contact.Dispatcher
	Champions           *champions.Service
	ContactController   *controllers.ContactController
	ChampionsController *controllers.ChampionsController

	closers []func(context.Context) error
}

// Close releases the connections opened while building the dependencies.
func (d *SiteDependencies) Close(ctx context.Context) {
	for _, closeFn := range d.closers {
		if err := closeFn(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close dependency")
		}
	}
}

// IntegrationStatus describes whether one optional integration is wired.
type IntegrationStatus struct {
	Name       string
	Configured bool
	Detail     string
}

type SiteContainer struct {
	config *config.Config
}

func NewSiteContainer(cfg *config.Config) *SiteContainer {
	return &SiteContainer{config: cfg}
}

func (c *SiteContainer) GetConfig() *config.Config {
	return c.config
}

// Integrations reports the configuration state of every integration without
// contacting any of them.
func (c *SiteContainer) Integrations() []IntegrationStatus {
	cfg := c.config

	task, taskOK := cfg.TaskService()
	_, sanityArchiveOK := cfg.SanityArchive()
	mongoCfg, mongoOK := cfg.MongoArchive()
	sanityCfg, sanityOK := cfg.Sanity()
	notifyCfg, notifyOK := cfg.Notification()
	cacheCfg, cacheOK := cfg.ChampionsCache()

	archiveDetail := cfg.ArchiveBackend
	switch {
	case sanityArchiveOK:
		archiveDetail = "sanity project " + sanityCfg.ProjectID
	case mongoOK:
		archiveDetail = fmt.Sprintf("mongodb %s.%s", mongoCfg.Database, mongoCfg.Collection)
	}

	return []IntegrationStatus{
		{Name: "task service (ClickUp)", Configured: taskOK, Detail: "list " + task.ListID},
		{Name: "archive", Configured: sanityArchiveOK || mongoOK, Detail: archiveDetail},
		{Name: "championship results (Sanity)", Configured: sanityOK, Detail: sanityCfg.Dataset},
		{Name: "staff notification (Resend)", Configured: notifyOK, Detail: fmt.Sprint(notifyCfg.To)},
		{Name: "championship cache (Redis)", Configured: cacheOK, Detail: cacheCfg.TTL.String()},
	}
}

// BuildSiteDependencies wires every configured integration. Integrations that
// are not configured are left nil and reported by the components that need
// them.
func (c *SiteContainer) BuildSiteDependencies(ctx context.Context) (*SiteDependencies, error) {
	log.Info().Msg("Building site dependencies")
	logger := log.Logger
	cfg := c.config

	deps := &SiteDependencies{}

	var taskCreator domain.TaskCreator
	if taskCfg, ok := cfg.TaskService(); ok {
		taskCreator = managers.NewClickUpTaskPublisher(managers.ClickUpTaskPublisherDependencies{
			Client: clickup.NewClient(
				clickup.WithBaseURL(taskCfg.BaseURL),
				clickup.WithAPIToken(taskCfg.APIToken),
				clickup.WithTimeout(cfg.HTTPClientTimeout),
				clickup.WithUserAgent(version.UserAgent()),
			),
			ListID: taskCfg.ListID,
		})
	} else {
		log.Warn().Msg("ClickUp not configured, contact submissions will be rejected")
	}

	var sanityClient *sanity.Client
	if sanityCfg, ok := cfg.Sanity(); ok {
		sanityClient = sanity.NewClient(
			sanity.WithProjectID(sanityCfg.ProjectID),
			sanity.WithDataset(sanityCfg.Dataset),
			sanity.WithToken(sanityCfg.Token),
			sanity.WithAPIVersion(sanityCfg.APIVersion),
			sanity.WithCDN(sanityCfg.UseCDN),
			sanity.WithTimeout(cfg.HTTPClientTimeout),
			sanity.WithUserAgent(version.UserAgent()),
		)
	}

	archive, err := c.buildArchiveStore(ctx, deps, sanityClient)
	if err != nil {
		deps.Close(ctx)
		return nil, err
	}

	var notifier domain.Notifier
	if notifyCfg, ok := cfg.Notification(); ok {
		notifier = managers.NewResendStaffNotifier(managers.ResendStaffNotifierDependencies{
			Emails: resend.NewClient(notifyCfg.APIKey).Emails,
			From:   notifyCfg.From,
			To:     notifyCfg.To,
		})
	}

	deps.Dispatcher = contact.NewDispatcher(contact.DispatcherDependencies{
		Classifier:    classifier.Default(),
		Tasks:         taskCreator,
		Archive:       archive,
		Notifier:      notifier,
		FallbackEmail: cfg.FallbackEmail,
		Logger:        logger,
	})

	var lister controllers.ChampionsLister
	if sanityClient != nil {
		source, err := c.buildChampionshipSource(deps, sanityClient)
		if err != nil {
			deps.Close(ctx)
			return nil, err
		}

		deps.Champions = champions.NewService(champions.ServiceDependencies{
			Source: source,
			Images: sanityClient,
			Logger: logger,
		})
		lister = deps.Champions
	}

	deps.ContactController = controllers.NewContactController(controllers.ContactControllerDependencies{
		Handler: deps.Dispatcher,
	})

	deps.ChampionsController = controllers.NewChampionsController(controllers.ChampionsControllerDependencies{
		Champions: lister,
	})

	return deps, nil
}

func (c *SiteContainer) buildArchiveStore(ctx context.Context, deps *SiteDependencies, sanityClient *sanity.Client) (domain.ArchiveStore, error) {
	cfg := c.config

	if _, ok := cfg.SanityArchive(); ok && sanityClient != nil {
		return managers.NewSanityArchiveStore(managers.SanityArchiveStoreDependencies{
			Client: sanityClient,
		}), nil
	}

	if mongoCfg, ok := cfg.MongoArchive(); ok {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoCfg.URI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		deps.closers = append(deps.closers, client.Disconnect)

		return managers.NewMongoArchiveStore(managers.MongoArchiveStoreDependencies{
			Client:     client,
			Database:   mongoCfg.Database,
			Collection: mongoCfg.Collection,
		}), nil
	}

	log.Info().Str("backend", cfg.ArchiveBackend).Msg("Archive not configured, submissions will not be archived")
	return nil, nil
}

func (c *SiteContainer) buildChampionshipSource(deps *SiteDependencies, sanityClient *sanity.Client) (domain.ChampionshipSource, error) {
	source := managers.NewSanityChampionshipSource(managers.SanityChampionshipSourceDependencies{
		Client: sanityClient,
	})

	cacheCfg, ok := c.config.ChampionsCache()
	if !ok {
		return source, nil
	}

	opts, err := redis.ParseURL(cacheCfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	deps.closers = append(deps.closers, func(context.Context) error {
		return client.Close()
	})

	return managers.NewCachedChampionshipSource(managers.CachedChampionshipSourceDependencies{
		Source: source,
		Redis:  client,
		TTL:    cacheCfg.TTL,
		Logger: log.Logger,
	}), nil
}
