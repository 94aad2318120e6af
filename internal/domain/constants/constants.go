// Package constants holds configuration literals shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EventTypeVerificationRecorded is the type attribute of events published after a record is stored.
const EventTypeVerificationRecorded = "verification.recorded"
