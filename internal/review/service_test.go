package review_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderflow/internal/domain"
	"orderflow/internal/mocks"
	"orderflow/internal/review"
)

func validEvent() *domain.RatingEvent {
	return &domain.RatingEvent{
		RestaurantID: 10,
		OrderID:      42,
		Target:       domain.TargetRestaurant,
		TargetID:     10,
		Rating:       5,
	}
}

func TestService_CreateOrUpdate_Insert(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	publisher := mocks.NewRatingPublisher(t)
	service := review.NewService(repo, cache, publisher)
	ctx := context.Background()
	event := validEvent()

	repo.On("ValidateOrderDelivered", ctx, 42, 10).Return(true, nil).Once()
	cache.On("MarkerKey", event).Return("rating:restaurant:10:42").Once()
	cache.On("Exists", ctx, "rating:restaurant:10:42").Return(false, nil).Once()
	repo.On("GetExistingRatingID", ctx, event).Return(0, nil).Once()
	repo.On("InsertRating", ctx, event).Return(nil).Once()
	cache.On("SetMarker", ctx, "rating:restaurant:10:42").Return(nil).Once()
	publisher.On("PublishRating", ctx, mock.MatchedBy(func(msg domain.RatingMessage) bool {
		return msg.Type == domain.RatingMessageNew && msg.RestaurantID == 10 && msg.Rating == 5
	})).Return(nil).Once()

	require.NoError(t, service.CreateOrUpdate(ctx, event))
}

func TestService_CreateOrUpdate_UpdatesExisting(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	service := review.NewService(repo, cache, nil)
	ctx := context.Background()
	event := validEvent()

	repo.On("ValidateOrderDelivered", ctx, 42, 10).Return(true, nil).Once()
	cache.On("MarkerKey", event).Return("key").Once()
	cache.On("Exists", ctx, "key").Return(false, nil).Once()
	repo.On("GetExistingRatingID", ctx, event).Return(7, nil).Once()
	repo.On("UpdateRating", ctx, 7, event).Return(nil).Once()
	cache.On("SetMarker", ctx, "key").Return(nil).Once()

	require.NoError(t, service.CreateOrUpdate(ctx, event))
	assert.Equal(t, 7, event.ID)
	repo.AssertNotCalled(t, "InsertRating")
}

func TestService_CreateOrUpdate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RatingEvent)
	}{
		{"rating too low", func(e *domain.RatingEvent) { e.Rating = 0 }},
		{"rating too high", func(e *domain.RatingEvent) { e.Rating = 6 }},
		{"unknown target", func(e *domain.RatingEvent) { e.Target = "chef" }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRatingRepository(t)
			cache := mocks.NewRatingCache(t)
			service := review.NewService(repo, cache, nil)

			event := validEvent()
			testCase.mutate(event)

			err := service.CreateOrUpdate(context.Background(), event)
			assert.ErrorIs(t, err, domain.ErrInvalidValue)
			repo.AssertNotCalled(t, "ValidateOrderDelivered")
		})
	}
}

func TestService_CreateOrUpdate_OrderNotDelivered(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	service := review.NewService(repo, cache, nil)
	ctx := context.Background()
	event := validEvent()

	repo.On("ValidateOrderDelivered", ctx, 42, 10).Return(false, nil).Once()

	err := service.CreateOrUpdate(ctx, event)
	assert.ErrorIs(t, err, review.ErrOrderNotDelivered)
	repo.AssertNotCalled(t, "InsertRating")
}

func TestService_CreateOrUpdate_DuplicateMarker(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	service := review.NewService(repo, cache, nil)
	ctx := context.Background()
	event := validEvent()

	repo.On("ValidateOrderDelivered", ctx, 42, 10).Return(true, nil).Once()
	cache.On("MarkerKey", event).Return("key").Once()
	cache.On("Exists", ctx, "key").Return(true, nil).Once()

	err := service.CreateOrUpdate(ctx, event)
	assert.ErrorIs(t, err, review.ErrDuplicateRating)
	repo.AssertNotCalled(t, "InsertRating")
}

func TestService_Summary_ServesCache(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	service := review.NewService(repo, cache, nil)
	ctx := context.Background()

	cached := &review.Summary{Restaurant: review.Stat{Count: 3, Avg: 4.33}}
	cache.On("GetSummary", ctx, 10).Return(cached, nil).Once()

	summary, err := service.Summary(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, *cached, summary)
	repo.AssertNotCalled(t, "ListAllRatings")
}

func TestService_Summary_RecomputesOnMiss(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	service := review.NewService(repo, cache, nil)
	ctx := context.Background()

	cache.On("GetSummary", ctx, 10).Return(nil, errors.New("cache miss")).Once()
	repo.On("ListAllRatings", ctx, 10).Return([]domain.RatingEvent{
		{Target: domain.TargetRestaurant, Rating: 5},
		{Target: domain.TargetRestaurant, Rating: 3},
	}, nil).Once()
	cache.On("SetSummary", ctx, 10, mock.Anything).Return(nil).Once()

	summary, err := service.Summary(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, review.Stat{Count: 2, Avg: 4}, summary.Restaurant)
}

func TestConsumer_ProcessRating(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	consumer := review.NewConsumer(nil, repo, cache)
	ctx := context.Background()

	repo.On("ListAllRatings", ctx, 10).Return([]domain.RatingEvent{
		{Target: domain.TargetDish, Rating: 4},
	}, nil).Once()
	cache.On("SetSummary", ctx, 10, review.Summary{
		Dish: review.Stat{Count: 1, Avg: 4},
	}).Return(nil).Once()

	consumer.ProcessRating(ctx, domain.RatingMessage{
		Type:         domain.RatingMessageNew,
		RestaurantID: 10,
		Target:       domain.TargetDish,
		TargetID:     3,
		Rating:       4,
	})
}

func TestConsumer_ProcessRating_IgnoresOtherTypes(t *testing.T) {
	repo := mocks.NewRatingRepository(t)
	cache := mocks.NewRatingCache(t)
	consumer := review.NewConsumer(nil, repo, cache)

	consumer.ProcessRating(context.Background(), domain.RatingMessage{Type: "retracted"})
	repo.AssertNotCalled(t, "ListAllRatings")
	cache.AssertNotCalled(t, "SetSummary")
}
