package service

import (
	"context"
)

// ProductEvent announces a newly listed product to asynchronous consumers.
type ProductEvent struct {
	RequestID   string `json:"requestId,omitempty"` // For distributed tracing
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	ShopID      uint   `json:"shopId"`
	ShopName    string `json:"shopName"`
	FollowerIDs []uint `json:"followerIds"` // Users notified in-app by the fan-out
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProductEvent publishes a product event for async processing
	PublishProductEvent(ctx context.Context, event *ProductEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
