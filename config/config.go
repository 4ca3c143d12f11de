package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"agency/internal/domain/constants"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultServiceName        = "Video Editing Agency API"
	defaultTokenTTL           = 24 * time.Hour
	defaultUsersCollection    = "agencyuser"
	defaultContactsCollection = "contactmessage"
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// ExposeErrorDetails forwards the underlying error text of 5xx responses to clients.
		ExposeErrorDetails bool `json:"exposeErrorDetails" yaml:"exposeErrorDetails"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS CORSConfig `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Store *StoreConfig `json:"store" yaml:"store"`

	// Postgres is only read when store.backend is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for lead notifications
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CORSConfig defines the cross-origin policy applied to every route
type CORSConfig struct {
	AllowOrigins     []string `json:"allowOrigins" yaml:"allowOrigins"`
	AllowCredentials bool     `json:"allowCredentials" yaml:"allowCredentials"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// StoreConfig selects and addresses the persistence backend.
type StoreConfig struct {
	// Backend is "docstore" (default) or "postgres"
	Backend string `json:"backend" yaml:"backend"`

	// Driver selects the docstore driver: "mem", "mongo" or "firestore"
	Driver string `json:"driver" yaml:"driver"`

	// URL is the server URL for the mongo driver
	URL string `json:"url" yaml:"url"`

	// DatabaseName is the mongo database holding the collections
	DatabaseName string `json:"databaseName" yaml:"databaseName"`

	// ProjectID is the Google Cloud project for the firestore driver
	ProjectID string `json:"projectId" yaml:"projectId"`

	// AutoMigrate runs the embedded migrations on start (postgres backend)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	Collections struct {
		Users    string `json:"users" yaml:"users"`
		Contacts string `json:"contacts" yaml:"contacts"`
	} `json:"collections" yaml:"collections"`
}

// PubSubConfig defines Pub/Sub configuration for lead publishing
type PubSubConfig struct {
	// Provider type: "local" for a webhook endpoint or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// LocalEndpoint receives push-style POSTs (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyLegacyEnv(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// applyLegacyEnv honours the variable names used by earlier deployments
// (SECRET_KEY, DATABASE_URL, DATABASE_NAME, PORT).
func applyLegacyEnv(cfg *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey.Access = v
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Store.URL = v
		// DATABASE_URL always addressed MongoDB. It overrides the yaml driver
		// unless STORE_DRIVER pins one.
		if _, pinned := os.LookupEnv("STORE_DRIVER"); !pinned &&
			(cfg.Store.Backend == "" || cfg.Store.Backend == constants.StoreBackendDocstore) {
			cfg.Store.Backend = constants.StoreBackendDocstore
			cfg.Store.Driver = constants.DocstoreDriverMongo
		}
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		cfg.Store.DatabaseName = v
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if len(cfg.HTTP.CORS.AllowOrigins) == 0 {
		cfg.HTTP.CORS.AllowOrigins = []string{"*"}
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = defaultServiceName
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Collections.Users == "" {
		cfg.Store.Collections.Users = defaultUsersCollection
	}
	if cfg.Store.Collections.Contacts == "" {
		cfg.Store.Collections.Contacts = defaultContactsCollection
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}
