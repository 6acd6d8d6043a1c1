package notify

import (
	"context"
	"fmt"
	"log"

	"orderflow/internal/domain"
)

type Service struct {
	repo NotificationRepository
	feed FeedSignal
}

func NewService(repo NotificationRepository, feed FeedSignal) *Service {
	return &Service{repo: repo, feed: feed}
}

func (s *Service) Create(ctx context.Context, requests []domain.NotificationRequest) ([]domain.Notification, error) {
	for _, req := range requests {
		if !req.Audience.Valid() {
			return nil, fmt.Errorf("%w: unknown audience %q", domain.ErrInvalidValue, req.Audience)
		}
	}
	created, err := s.repo.InsertNotifications(ctx, requests)
	if err != nil {
		return nil, err
	}
	s.bump(ctx, requests)
	return created, nil
}

func (s *Service) List(ctx context.Context, restaurantID int, audience domain.Audience, onlyUnread bool) ([]domain.Notification, error) {
	if !audience.Valid() {
		return nil, fmt.Errorf("%w: unknown audience %q", domain.ErrInvalidValue, audience)
	}
	return s.repo.ListNotifications(ctx, restaurantID, audience, onlyUnread)
}

// UnreadCount is always derived from the rows, never stored.
func (s *Service) UnreadCount(ctx context.Context, restaurantID int, audience domain.Audience) (int, error) {
	if !audience.Valid() {
		return 0, fmt.Errorf("%w: unknown audience %q", domain.ErrInvalidValue, audience)
	}
	return s.repo.UnreadCount(ctx, restaurantID, audience)
}

func (s *Service) MarkRead(ctx context.Context, restaurantID, notificationID int) error {
	affected, err := s.repo.MarkRead(ctx, restaurantID, notificationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: notification %d", domain.ErrNotFound, notificationID)
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error) {
	if !audience.Valid() {
		return 0, fmt.Errorf("%w: unknown audience %q", domain.ErrInvalidValue, audience)
	}
	return s.repo.MarkAllRead(ctx, restaurantID, audience)
}

func (s *Service) FeedVersion(ctx context.Context, restaurantID int, audience domain.Audience) (int64, error) {
	if s.feed == nil {
		return 0, nil
	}
	return s.feed.Version(ctx, restaurantID, audience)
}

func (s *Service) bump(ctx context.Context, requests []domain.NotificationRequest) {
	if s.feed == nil {
		return
	}
	seen := map[string]bool{}
	for _, req := range requests {
		key := fmt.Sprintf("%d/%s", req.RestaurantID, req.Audience)
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := s.feed.Bump(ctx, req.RestaurantID, req.Audience); err != nil {
			log.Printf("Warning: failed to bump feed signal for %s: %v", key, err)
		}
	}
}

var _ ServiceInterface = (*Service)(nil)
