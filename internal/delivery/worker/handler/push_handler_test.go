package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/service"
	"zembil/internal/infra/pubsub"
	usecasemocks "zembil/internal/mocks/usecase"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, event *service.ProductEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushHandler(pushUC usecase.PushUsecase) *PushHandler {
	return &PushHandler{
		logger: slog.New(slog.DiscardHandler),
		pushUC: pushUC,
	}
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_NotifiesFollowers(t *testing.T) {
	pushUC := usecasemocks.NewMockPushUsecase(t)
	event := &service.ProductEvent{
		RequestID:   "req-9",
		ProductID:   42,
		ProductName: "Phone",
		ShopID:      3,
		ShopName:    "Abebe Electronics",
		FollowerIDs: []uint{7, 8},
	}

	pushUC.EXPECT().
		NotifyFollowers(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-9"
		}), mock.MatchedBy(func(got *service.ProductEvent) bool {
			return got.ProductID == 42 && assert.ObjectsAreEqual([]uint{7, 8}, got.FollowerIDs)
		})).
		Return(&usecase.PushResult{Devices: 2, SuccessCount: 2}, nil)

	rec := doPush(newPushHandler(pushUC), pushBody(t, event, map[string]string{pubsub.AttributeEventType: "product.created"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SuccessCount":2`)
}

func TestHandlePush_RetriesWhenNothingSent(t *testing.T) {
	pushUC := usecasemocks.NewMockPushUsecase(t)
	pushUC.EXPECT().NotifyFollowers(mock.Anything, mock.Anything).
		Return(&usecase.PushResult{Devices: 1, FailureCount: 1}, errors.New("fcm unavailable"))

	rec := doPush(newPushHandler(pushUC), pushBody(t, &service.ProductEvent{ProductID: 1, FollowerIDs: []uint{2}}, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_RejectsBadMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`},
		{name: "other event type", body: `{"message":{"data":"e30=","attributes":{"event_type":"shop.deleted"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pushUC := usecasemocks.NewMockPushUsecase(t)

			rec := doPush(newPushHandler(pushUC), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	pushUC := usecasemocks.NewMockPushUsecase(t)
	h := newPushHandler(pushUC)
	h.verifyPushAuth = true
	h.verifyToken = func(context.Context, *http.Request) error {
		return errors.New("invalid issuer")
	}

	rec := doPush(h, pushBody(t, &service.ProductEvent{ProductID: 1}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
