// Package constants holds domain-wide constant values.
package constants

const (
	// PubSubProviderLocal publishes reward events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes reward events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
