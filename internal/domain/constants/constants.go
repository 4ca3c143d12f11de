// Package constants holds configuration values shared across layers.
package constants

// Persistence backends selectable through store.backend.
const (
	StoreBackendDocstore = "docstore"
	StoreBackendPostgres = "postgres"
)

// Docstore drivers selectable through store.driver.
const (
	DocstoreDriverMem       = "mem"
	DocstoreDriverMongo     = "mongo"
	DocstoreDriverFirestore = "firestore"
)

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Environments with special handling.
const (
	EnvLocal      = "local"
	EnvProduction = "production"
)

// TokenTypeBearer is the token_type returned alongside every access token.
const TokenTypeBearer = "bearer"
