package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zembil/config"
	"zembil/internal/domain/constants"
	"zembil/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishProductEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.ProductEvent{
		RequestID:   "req-1",
		ProductID:   10,
		ProductName: "Coffee",
		ShopID:      3,
		ShopName:    "Bunna",
		FollowerIDs: []uint{4, 5},
	}

	require.NoError(t, publisher.PublishProductEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventTypeProductCreated, received.Message.Attributes[AttributeEventType])
	assert.Equal(t, "10", received.Message.Attributes[AttributeProductID])
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "shop-3", received.Message.OrderingKey)
	assert.Equal(t, localSubscription, received.Subscription)

	decoded, err := received.DecodeProductEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishProductEvent(context.Background(), &service.ProductEvent{ProductID: 1})
	assert.ErrorContains(t, err, "503")
}

func TestPushMessage_DecodeProductEvent_RejectsUnknownType(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Attributes = map[string]string{AttributeEventType: "shop.deleted"}

	_, err := msg.DecodeProductEvent()
	assert.Error(t, err)
}

func TestPushMessage_DecodeProductEvent_RejectsBadData(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.DecodeProductEvent()
	assert.Error(t, err)
}

func TestPushMessage_DecodeProductEvent_RequiresProductID(t *testing.T) {
	enc, err := encodeProductEvent(&service.ProductEvent{ShopID: 3, RequestID: "req-2"})
	require.NoError(t, err)

	_, err = enc.pushMessage(localSubscription, time.Now()).DecodeProductEvent()
	assert.ErrorContains(t, err, "no product id")
}

func TestPushMessage_DecodeProductEvent_RequestIDFromAttributes(t *testing.T) {
	enc, err := encodeProductEvent(&service.ProductEvent{ProductID: 9, ShopID: 3, RequestID: "req-3"})
	require.NoError(t, err)

	// Older publishers only set the attribute.
	msg := enc.pushMessage(localSubscription, time.Now())
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(`{"productId":9,"shopId":3}`))

	event, err := msg.DecodeProductEvent()
	require.NoError(t, err)
	assert.Equal(t, "req-3", event.RequestID)
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher_PublishProductEvent(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishProductEvent(context.Background(), &service.ProductEvent{ProductID: 1}))
	assert.NoError(t, publisher.Close())
}
