package storage

import (
	"context"
	"database/sql"

	"orderflow/internal/domain"
	"orderflow/internal/notify"
)

type NotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

type execQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func insertNotificationTx(ctx context.Context, q execQueryer, req domain.NotificationRequest) (domain.Notification, error) {
	notification := domain.Notification{
		RestaurantID: req.RestaurantID,
		Audience:     req.Audience,
		Type:         req.Type,
		Message:      req.Message,
	}
	orderID := req.OrderID
	notification.OrderID = &orderID
	err := q.QueryRowContext(ctx, `
		INSERT INTO notifications (restaurant_id, audience, type, message, read, order_id)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id, created_at
	`, req.RestaurantID, req.Audience, req.Type, req.Message, req.OrderID).
		Scan(&notification.ID, &notification.CreatedAt)
	return notification, err
}

func (r *NotificationRepository) InsertNotifications(ctx context.Context, requests []domain.NotificationRequest) ([]domain.Notification, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	created := make([]domain.Notification, 0, len(requests))
	for _, req := range requests {
		notification, err := insertNotificationTx(ctx, tx, req)
		if err != nil {
			return nil, err
		}
		created = append(created, notification)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

// ListNotifications returns the feed newest-first, enriched by a lookup
// join: order number, live status and table number reflect the order at
// read time, and stay absent when the order or table is gone.
func (r *NotificationRepository) ListNotifications(ctx context.Context, restaurantID int, audience domain.Audience, onlyUnread bool) ([]domain.Notification, error) {
	query := `
		SELECT n.id, n.restaurant_id, n.audience, n.type, n.message, n.read, n.order_id, n.created_at,
		       o.order_number, o.status, t.number
		FROM notifications n
		LEFT JOIN orders o ON n.order_id = o.id
		LEFT JOIN tables t ON o.table_id = t.id
		WHERE n.restaurant_id = $1 AND n.audience = $2`
	args := []interface{}{restaurantID, audience}
	if onlyUnread {
		query += " AND n.read = FALSE"
	}
	query += " ORDER BY n.created_at DESC, n.id DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var orderID, orderNumber, tableNumber sql.NullInt64
		var status sql.NullString
		if err := rows.Scan(&n.ID, &n.RestaurantID, &n.Audience, &n.Type, &n.Message, &n.Read,
			&orderID, &n.CreatedAt, &orderNumber, &status, &tableNumber); err != nil {
			continue
		}
		if orderID.Valid {
			id := int(orderID.Int64)
			n.OrderID = &id
		}
		if orderNumber.Valid {
			number := int(orderNumber.Int64)
			n.OrderNumber = &number
		}
		if status.Valid {
			s := domain.Status(status.String)
			n.OrderStatus = &s
		}
		if tableNumber.Valid {
			number := int(tableNumber.Int64)
			n.TableNumber = &number
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, restaurantID int, audience domain.Audience) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notifications
		WHERE restaurant_id = $1 AND audience = $2 AND read = FALSE
	`, restaurantID, audience).Scan(&count)
	return count, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, restaurantID, notificationID int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND restaurant_id = $2
	`, notificationID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// MarkAllRead is one statement, so concurrent readers see either the
// fully-updated set or the prior one, never a partial mix.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE restaurant_id = $1 AND audience = $2 AND read = FALSE
	`, restaurantID, audience)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

var _ notify.NotificationRepository = (*NotificationRepository)(nil)
