// Package constants contains values shared across layers.
package constants

// Environment names used in env.env.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Notification types written by the marketplace.
const (
	NotificationTypeNewProduct = "New Product"
	NotificationTypeNewReview  = "New Review"
)

// EventTypeProductCreated tags product creation events on the bus.
const EventTypeProductCreated = "product.created"
