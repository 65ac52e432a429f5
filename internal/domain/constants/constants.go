// Package constants holds string constants shared between configuration and infrastructure.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Conversation history modes
const (
	HistoryModeCounterparty = "counterparty"
	HistoryModePairwise     = "pairwise"
)
