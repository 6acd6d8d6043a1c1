package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderflow/internal/domain"
)

var (
	ErrOrderNotDelivered = errors.New("order is not delivered yet")
	ErrDuplicateRating   = errors.New("rating already exists for this target and order")
)

type Service struct {
	repository RatingRepository
	cache      RatingCache
	publisher  RatingPublisher
}

func NewService(repository RatingRepository, cache RatingCache, publisher RatingPublisher) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

func (s *Service) CreateOrUpdate(ctx context.Context, event *domain.RatingEvent) error {
	if event.Rating < 1 || event.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidValue)
	}
	switch event.Target {
	case domain.TargetRestaurant, domain.TargetWaiter, domain.TargetDish:
	default:
		return fmt.Errorf("%w: unknown rating target %q", domain.ErrInvalidValue, event.Target)
	}

	delivered, err := s.repository.ValidateOrderDelivered(ctx, event.OrderID, event.RestaurantID)
	if err != nil {
		return fmt.Errorf("failed to validate order: %w", err)
	}
	if !delivered {
		return ErrOrderNotDelivered
	}

	cacheKey := s.cache.MarkerKey(event)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return ErrDuplicateRating
	}

	existingID, err := s.repository.GetExistingRatingID(ctx, event)
	isUpdate := err == nil && existingID > 0
	if isUpdate {
		if err := s.repository.UpdateRating(ctx, existingID, event); err != nil {
			return err
		}
		event.ID = existingID
	} else if err := s.repository.InsertRating(ctx, event); err != nil {
		return err
	}

	_ = s.cache.SetMarker(ctx, cacheKey)

	if s.publisher != nil {
		_ = s.publisher.PublishRating(ctx, domain.RatingMessage{
			Type:         domain.RatingMessageNew,
			RestaurantID: event.RestaurantID,
			OrderID:      event.OrderID,
			Target:       event.Target,
			TargetID:     event.TargetID,
			Rating:       event.Rating,
			Timestamp:    time.Now(),
		})
	}

	return nil
}

func (s *Service) List(ctx context.Context, restaurantID int, target domain.RatingTarget, targetID int) ([]domain.RatingEvent, error) {
	return s.repository.ListRatings(ctx, restaurantID, target, targetID)
}

// Summary serves the cached aggregate when present and recomputes from
// the rows otherwise, the consumer keeps the cache warm.
func (s *Service) Summary(ctx context.Context, restaurantID int) (Summary, error) {
	if cached, err := s.cache.GetSummary(ctx, restaurantID); err == nil && cached != nil {
		return *cached, nil
	}

	events, err := s.repository.ListAllRatings(ctx, restaurantID)
	if err != nil {
		return Summary{}, err
	}
	summary := Aggregate(events)
	_ = s.cache.SetSummary(ctx, restaurantID, summary)
	return summary, nil
}

var _ ServiceInterface = (*Service)(nil)
