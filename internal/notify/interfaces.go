package notify

import (
	"context"

	"orderflow/internal/domain"
)

type ServiceInterface interface {
	Create(ctx context.Context, requests []domain.NotificationRequest) ([]domain.Notification, error)
	List(ctx context.Context, restaurantID int, audience domain.Audience, onlyUnread bool) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, restaurantID int, audience domain.Audience) (int, error)
	MarkRead(ctx context.Context, restaurantID, notificationID int) error
	MarkAllRead(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error)
	FeedVersion(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error)
}

type NotificationRepository interface {
	InsertNotifications(ctx context.Context, requests []domain.NotificationRequest) ([]domain.Notification, error)
	ListNotifications(ctx context.Context, restaurantID int, audience domain.Audience, onlyUnread bool) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, restaurantID int, audience domain.Audience) (int, error)
	MarkRead(ctx context.Context, restaurantID, notificationID int) (int64, error)
	MarkAllRead(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error)
}

// FeedSignal is the delivery collaborator hook: a cheap per-audience
// counter polling clients compare to detect fresh notifications.
type FeedSignal interface {
	Bump(ctx context.Context, restaurantID int, audience domain.Audience) error
	Version(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error)
}
