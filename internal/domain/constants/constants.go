package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push gateway providers
const (
	GatewayProviderFirebase = "firebase"
	GatewayProviderLog      = "log"
)
