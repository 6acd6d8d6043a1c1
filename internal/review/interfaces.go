package review

import (
	"context"

	"orderflow/internal/domain"
)

type ServiceInterface interface {
	CreateOrUpdate(ctx context.Context, event *domain.RatingEvent) error
	List(ctx context.Context, restaurantID int, target domain.RatingTarget, targetID int) ([]domain.RatingEvent, error)
	Summary(ctx context.Context, restaurantID int) (Summary, error)
}

type RatingRepository interface {
	ValidateOrderDelivered(ctx context.Context, orderID, restaurantID int) (bool, error)
	GetExistingRatingID(ctx context.Context, event *domain.RatingEvent) (int, error)
	InsertRating(ctx context.Context, event *domain.RatingEvent) error
	UpdateRating(ctx context.Context, id int, event *domain.RatingEvent) error
	ListRatings(ctx context.Context, restaurantID int, target domain.RatingTarget, targetID int) ([]domain.RatingEvent, error)
	ListAllRatings(ctx context.Context, restaurantID int) ([]domain.RatingEvent, error)
}

type RatingCache interface {
	MarkerKey(event *domain.RatingEvent) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
	GetSummary(ctx context.Context, restaurantID int) (*Summary, error)
	SetSummary(ctx context.Context, restaurantID int, summary Summary) error
}

type RatingPublisher interface {
	PublishRating(ctx context.Context, msg domain.RatingMessage) error
}
