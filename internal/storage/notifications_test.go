package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderflow/internal/domain"
	"orderflow/internal/storage"
)

func setupNotificationDB(t *testing.T) (*storage.NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewNotificationRepository(db), mock
}

func TestNotificationRepository_InsertNotifications(t *testing.T) {
	repo, mock := setupNotificationDB(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(10, "customer", "accepted", "Order #7 has been accepted", 42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(10, "waiter", "cancelled", "Order #7 was cancelled", 42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, now))
	mock.ExpectCommit()

	created, err := repo.InsertNotifications(context.Background(), []domain.NotificationRequest{
		{RestaurantID: 10, OrderID: 42, Audience: domain.AudienceCustomer, Type: domain.NotificationAccepted, Message: "Order #7 has been accepted"},
		{RestaurantID: 10, OrderID: 42, Audience: domain.AudienceWaiter, Type: domain.NotificationCancelled, Message: "Order #7 was cancelled"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, 1, created[0].ID)
	require.NotNil(t, created[1].OrderID)
	assert.Equal(t, 42, *created[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func notificationColumns() []string {
	return []string{"id", "restaurant_id", "audience", "type", "message", "read",
		"order_id", "created_at", "order_number", "status", "number"}
}

func TestNotificationRepository_ListNotifications_Enrichment(t *testing.T) {
	repo, mock := setupNotificationDB(t)
	now := time.Now()

	mock.ExpectQuery("LEFT JOIN orders").
		WithArgs(10, "waiter").
		WillReturnRows(sqlmock.NewRows(notificationColumns()).
			AddRow(2, 10, "waiter", "ready", "Order #7 is ready to serve", false, 42, now, 7, "ready", 4).
			AddRow(1, 10, "waiter", "cancelled", "Order #3 was cancelled", true, nil, now, nil, nil, nil))

	notifications, err := repo.ListNotifications(context.Background(), 10, domain.AudienceWaiter, false)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	enriched := notifications[0]
	require.NotNil(t, enriched.OrderID)
	require.NotNil(t, enriched.OrderNumber)
	require.NotNil(t, enriched.OrderStatus)
	require.NotNil(t, enriched.TableNumber)
	assert.Equal(t, 7, *enriched.OrderNumber)
	assert.Equal(t, domain.StatusReady, *enriched.OrderStatus)
	assert.Equal(t, 4, *enriched.TableNumber)

	orphan := notifications[1]
	assert.Nil(t, orphan.OrderID)
	assert.Nil(t, orphan.OrderNumber)
	assert.Nil(t, orphan.OrderStatus)
	assert.Nil(t, orphan.TableNumber)
	assert.True(t, orphan.Read)
}

func TestNotificationRepository_ListNotifications_UnreadOnly(t *testing.T) {
	repo, mock := setupNotificationDB(t)

	mock.ExpectQuery(`n.read = FALSE`).
		WithArgs(10, "customer").
		WillReturnRows(sqlmock.NewRows(notificationColumns()))

	notifications, err := repo.ListNotifications(context.Background(), 10, domain.AudienceCustomer, true)
	require.NoError(t, err)
	assert.Empty(t, notifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_UnreadCount(t *testing.T) {
	repo, mock := setupNotificationDB(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(10, "waiter").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.UnreadCount(context.Background(), 10, domain.AudienceWaiter)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	repo, mock := setupNotificationDB(t)

	mock.ExpectExec("UPDATE notifications SET read").
		WithArgs(5, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.MarkRead(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	repo, mock := setupNotificationDB(t)

	mock.ExpectExec("UPDATE notifications SET read").
		WithArgs(10, "customer").
		WillReturnResult(sqlmock.NewResult(0, 4))

	affected, err := repo.MarkAllRead(context.Background(), 10, domain.AudienceCustomer)
	require.NoError(t, err)
	assert.Equal(t, int64(4), affected)
}
