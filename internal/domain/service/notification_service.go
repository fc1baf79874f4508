package service

import "context"

// PushMessage is what a follower's device shows, plus data the app routes on.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// MulticastResult summarises one multicast send. InvalidTokens lists tokens the
// provider rejected permanently; their devices should be deactivated.
type MulticastResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// NotificationService sends device push notifications.
type NotificationService interface {
	// SendMulticast sends msg to every token. Callers split tokens into batches the provider accepts.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (*MulticastResult, error)
}
