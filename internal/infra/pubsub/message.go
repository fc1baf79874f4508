// Package pubsub publishes product events and decodes the push envelopes the worker receives.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"zembil/internal/domain/constants"
	"zembil/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Attribute keys attached to every published message.
const (
	AttributeEventType = "event_type"
	AttributeProductID = "product_id"
	AttributeShopID    = "shop_id"
	AttributeRequestID = "request_id"
)

// PushMessage is the JSON body of a Pub/Sub push delivery.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeProductEvent extracts the product event carried by a push message.
func (m *PushMessage) DecodeProductEvent() (*service.ProductEvent, error) {
	if eventType := m.Message.Attributes[AttributeEventType]; eventType != "" && eventType != constants.EventTypeProductCreated {
		return nil, errors.Errorf("unsupported event type: %s", eventType)
	}

	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.ProductEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal product event")
	}
	if event.ProductID == 0 {
		return nil, errors.New("product event has no product id")
	}

	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes[AttributeRequestID]
	}

	return &event, nil
}

// encodedEvent is a product event ready for any transport.
type encodedEvent struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeProductEvent serialises event. Events of one shop share an ordering key.
func encodeProductEvent(event *service.ProductEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	shopID := strconv.FormatUint(uint64(event.ShopID), 10)
	attributes := map[string]string{
		AttributeEventType: constants.EventTypeProductCreated,
		AttributeProductID: strconv.FormatUint(uint64(event.ProductID), 10),
		AttributeShopID:    shopID,
	}
	if event.RequestID != "" {
		attributes[AttributeRequestID] = event.RequestID
	}

	return &encodedEvent{
		data:        data,
		attributes:  attributes,
		orderingKey: "shop-" + shopID,
	}, nil
}

// pushMessage wraps enc the way a push subscription would deliver it.
func (enc *encodedEvent) pushMessage(subscription string, now time.Time) *PushMessage {
	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(enc.data)
	msg.Message.Attributes = enc.attributes
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339)
	msg.Message.OrderingKey = enc.orderingKey

	return msg
}
