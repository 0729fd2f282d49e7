package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ArchiveBackendSanity  = "sanity"
	ArchiveBackendMongoDB = "mongodb"
	ArchiveBackendNone    = "none"
)

// Config holds all site configuration
type Config struct {
	// Server settings
	HTTPAddress       string
	HTTPClientTimeout time.Duration
	FallbackEmail     string

	// Task service
	ClickUpAPIToken string
	ClickUpListID   string
	ClickUpAPIURL   string

	// Content store
	SanityProjectID  string
	SanityDataset    string
	SanityToken      string
	SanityAPIVersion string
	SanityUseCDN     bool

	ArchiveBackend    string
	MongoDBURI        string
	MongoDBDatabase   string
	MongoDBCollection string

	// Staff notification
	ResendAPIKey string
	NotifyFrom   string
	NotifyTo     string

	// Champions cache
	RedisURL          string
	ChampionsCacheTTL time.Duration
}

type TaskServiceConfig struct {
	APIToken string
	ListID   string
	BaseURL  string
}

type SanityConfig struct {
	ProjectID  string
	Dataset    string
	Token      string
	APIVersion string
	UseCDN     bool
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type NotificationConfig struct {
	APIKey string
	From   string
	To     []string
}

type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// envMappings binds struct fields to environment variables
var envMappings = map[string]string{
	"HTTPAddress":       "HTTP_ADDRESS",
	"HTTPClientTimeout": "HTTP_CLIENT_TIMEOUT",
	"FallbackEmail":     "FALLBACK_EMAIL",
	"ClickUpAPIToken":   "CLICKUP_API_TOKEN",
	"ClickUpListID":     "CLICKUP_LIST_ID",
	"ClickUpAPIURL":     "CLICKUP_API_URL",
	"SanityProjectID":   "SANITY_PROJECT_ID",
	"SanityDataset":     "SANITY_DATASET",
	"SanityToken":       "SANITY_TOKEN",
	"SanityAPIVersion":  "SANITY_API_VERSION",
	"SanityUseCDN":      "SANITY_USE_CDN",
	"ArchiveBackend":    "ARCHIVE_BACKEND",
	"MongoDBURI":        "MONGODB_URI",
	"MongoDBDatabase":   "MONGODB_DATABASE",
	"MongoDBCollection": "MONGODB_COLLECTION",
	"ResendAPIKey":      "RESEND_API_KEY",
	"NotifyFrom":        "NOTIFY_FROM",
	"NotifyTo":          "NOTIFY_TO",
	"RedisURL":          "REDIS_URL",
	"ChampionsCacheTTL": "CHAMPIONS_CACHE_TTL",
}

// Load reads configuration from an optional .env file, the environment and
// an optional site_config.yaml. A missing task service is not an error here;
// contact requests report it when they arrive.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("site_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.idahoesports")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("HTTPClientTimeout", 30*time.Second)
	v.SetDefault("FallbackEmail", "info@idahoesports.gg")
	v.SetDefault("ClickUpAPIURL", "https://api.clickup.com/api/v2")
	v.SetDefault("SanityDataset", "production")
	v.SetDefault("SanityAPIVersion", "2024-01-01")
	v.SetDefault("SanityUseCDN", false)
	v.SetDefault("ArchiveBackend", ArchiveBackendSanity)
	v.SetDefault("MongoDBCollection", "contact_submissions")
	v.SetDefault("ChampionsCacheTTL", 5*time.Minute)
}

// validateConfig rejects values that can never work. Absent integrations are
// allowed.
func validateConfig(config *Config) error {
	var problems []string

	config.ArchiveBackend = strings.ToLower(strings.TrimSpace(config.ArchiveBackend))

	switch config.ArchiveBackend {
	case ArchiveBackendSanity, ArchiveBackendNone:
	case ArchiveBackendMongoDB:
		if config.MongoDBURI == "" || config.MongoDBDatabase == "" {
			problems = append(problems, "ARCHIVE_BACKEND=mongodb requires MONGODB_URI and MONGODB_DATABASE")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown ARCHIVE_BACKEND %q", config.ArchiveBackend))
	}

	if config.HTTPClientTimeout <= 0 {
		problems = append(problems, "HTTP_CLIENT_TIMEOUT must be positive")
	}

	// go-redis treats a zero or negative expiration as "keep forever".
	if config.ChampionsCacheTTL <= 0 {
		problems = append(problems, "CHAMPIONS_CACHE_TTL must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

// TaskService reports whether both task service credentials are present.
func (c *Config) TaskService() (TaskServiceConfig, bool) {
	if c.ClickUpAPIToken == "" || c.ClickUpListID == "" {
		return TaskServiceConfig{}, false
	}

	return TaskServiceConfig{
		APIToken: c.ClickUpAPIToken,
		ListID:   c.ClickUpListID,
		BaseURL:  c.ClickUpAPIURL,
	}, true
}

// Sanity reports whether the content store can be written to. Reads of public
// datasets only need the project, so the token is not required here.
func (c *Config) Sanity() (SanityConfig, bool) {
	if c.SanityProjectID == "" {
		return SanityConfig{}, false
	}

	return SanityConfig{
		ProjectID:  c.SanityProjectID,
		Dataset:    c.SanityDataset,
		Token:      c.SanityToken,
		APIVersion: c.SanityAPIVersion,
		UseCDN:     c.SanityUseCDN,
	}, true
}

// SanityArchive is the content store config used for archival, which needs a
// write token.
func (c *Config) SanityArchive() (SanityConfig, bool) {
	if c.ArchiveBackend != ArchiveBackendSanity || c.SanityToken == "" {
		return SanityConfig{}, false
	}

	return c.Sanity()
}

func (c *Config) MongoArchive() (MongoConfig, bool) {
	if c.ArchiveBackend != ArchiveBackendMongoDB || c.MongoDBURI == "" || c.MongoDBDatabase == "" {
		return MongoConfig{}, false
	}

	return MongoConfig{
		URI:        c.MongoDBURI,
		Database:   c.MongoDBDatabase,
		Collection: c.MongoDBCollection,
	}, true
}

func (c *Config) Notification() (NotificationConfig, bool) {
	to := splitList(c.NotifyTo)
	if c.ResendAPIKey == "" || c.NotifyFrom == "" || len(to) == 0 {
		return NotificationConfig{}, false
	}

	return NotificationConfig{
		APIKey: c.ResendAPIKey,
		From:   c.NotifyFrom,
		To:     to,
	}, true
}

func (c *Config) ChampionsCache() (CacheConfig, bool) {
	if c.RedisURL == "" {
		return CacheConfig{}, false
	}

	return CacheConfig{
		RedisURL: c.RedisURL,
		TTL:      c.ChampionsCacheTTL,
	}, true
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
