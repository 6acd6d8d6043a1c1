package httpapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "orderflow/internal/api/http"
	"orderflow/internal/domain"
	"orderflow/internal/mocks"
)

func TestListNotifications(t *testing.T) {
	service := mocks.NewNotificationServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewNotificationHandler(service))

	orderNumber := 7
	service.On("List", mock.Anything, 10, domain.AudienceWaiter, false).
		Return([]domain.Notification{
			{ID: 2, RestaurantID: 10, Audience: domain.AudienceWaiter, Type: domain.NotificationReady,
				Message: "Order #7 is ready to serve", OrderNumber: &orderNumber},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/notifications/waiter", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.NotNil(t, got[0].OrderNumber)
	assert.Equal(t, 7, *got[0].OrderNumber)
}

func TestListNotifications_EmptyFeedIsArray(t *testing.T) {
	service := mocks.NewNotificationServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewNotificationHandler(service))

	service.On("List", mock.Anything, 10, domain.AudienceCustomer, true).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/notifications/customer?unread=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListNotifications_UnknownAudience(t *testing.T) {
	service := mocks.NewNotificationServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewNotificationHandler(service))

	service.On("List", mock.Anything, 10, domain.Audience("manager"), false).
		Return(nil, fmt.Errorf("%w: unknown audience %q", domain.ErrInvalidValue, "manager")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/notifications/manager", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnreadCount(t *testing.T) {
	service := mocks.NewNotificationServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewNotificationHandler(service))

	service.On("UnreadCount", mock.Anything, 10, domain.AudienceWaiter).Return(3, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/notifications/waiter/unread-count", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unread": 3}`, rec.Body.String())
}

func TestMarkRead_NotFound(t *testing.T) {
	service := mocks.NewNotificationServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewNotificationHandler(service))

	service.On("MarkRead", mock.Anything, 10, 999).
		Return(fmt.Errorf("%w: notification 999", domain.ErrNotFound)).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/10/notifications/waiter/999/read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkAllRead(t *testing.T) {
	service := mocks.NewNotificationServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewNotificationHandler(service))

	service.On("MarkAllRead", mock.Anything, 10, domain.AudienceCustomer).Return(int64(4), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/10/notifications/customer/read-all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated": 4}`, rec.Body.String())
}

func TestFeedVersion(t *testing.T) {
	service := mocks.NewNotificationServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewNotificationHandler(service))

	service.On("FeedVersion", mock.Anything, 10, domain.AudienceWaiter).Return(int64(12), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/notifications/waiter/feed-version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version": 12}`, rec.Body.String())
}
