package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderflow/internal/domain"
	"orderflow/internal/mocks"
	"orderflow/internal/order"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Create_RecomputesTotals(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	service := order.NewService(repo, nil)
	ctx := context.Background()

	var persisted *domain.Order
	repo.On("CreateOrder", ctx, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*domain.Order)
	}).Return(nil).Once()

	items := []domain.CartItem{
		{DishID: 1, DishName: "Margherita", UnitPrice: dec("9.50"), Quantity: 2},
		{
			DishID:    2,
			DishName:  "Carbonara",
			UnitPrice: dec("12.00"),
			Quantity:  1,
			Ingredients: []domain.IngredientSelection{
				{IngredientID: 3, Name: "extra bacon", Added: true, PriceDelta: dec("2.50")},
			},
		},
	}

	created, err := service.Create(ctx, 10, 4, items, "no cutlery")
	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "33.50", created.TotalAmount.StringFixed(2))
	require.Len(t, created.Items, 2)
	assert.Equal(t, "19.00", created.Items[0].TotalPrice.StringFixed(2))
	assert.Equal(t, "14.50", created.Items[1].TotalPrice.StringFixed(2))
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name         string
		restaurantID int
		tableID      int
		items        []domain.CartItem
	}{
		{"no restaurant", 0, 1, []domain.CartItem{{DishID: 1, Quantity: 1}}},
		{"no table", 1, 0, []domain.CartItem{{DishID: 1, Quantity: 1}}},
		{"no items", 1, 1, nil},
		{"negative quantity", 1, 1, []domain.CartItem{{DishID: 1, Quantity: -1, UnitPrice: dec("5.00")}}},
		{"zero quantity", 1, 1, []domain.CartItem{{DishID: 1, Quantity: 0, UnitPrice: dec("9.50")}}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			service := order.NewService(repo, nil)

			_, err := service.Create(context.Background(), testCase.restaurantID, testCase.tableID, testCase.items, "")
			assert.ErrorIs(t, err, domain.ErrInvalidValue)
			repo.AssertNotCalled(t, "CreateOrder")
		})
	}
}

func TestService_Transition_PublishesEventOnApply(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	service := order.NewService(repo, publisher)
	ctx := context.Background()

	updated := &domain.Order{ID: 42, RestaurantID: 10, OrderNumber: 7, Status: domain.StatusReady}
	repo.On("ApplyTransition", ctx, 10, 42, domain.StatusReady, "chef", "").
		Return(&order.TransitionResult{Order: updated, From: domain.StatusInPreparation, Applied: true}, nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == domain.OrderEventStatusChanged &&
			event.OrderID == 42 &&
			event.From == domain.StatusInPreparation &&
			event.To == domain.StatusReady
	})).Return(nil).Once()

	result, err := service.Transition(ctx, 10, 42, domain.StatusReady, "chef", "")
	require.NoError(t, err)
	assert.True(t, result.Applied)
}

func TestService_Transition_NoEventOnIdempotentNoop(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	service := order.NewService(repo, publisher)
	ctx := context.Background()

	current := &domain.Order{ID: 42, RestaurantID: 10, Status: domain.StatusReady}
	repo.On("ApplyTransition", ctx, 10, 42, domain.StatusReady, "", "").
		Return(&order.TransitionResult{Order: current, From: domain.StatusReady, Applied: false}, nil).Once()

	result, err := service.Transition(ctx, 10, 42, domain.StatusReady, "", "")
	require.NoError(t, err)
	assert.False(t, result.Applied)
	publisher.AssertNotCalled(t, "PublishOrderEvent")
}

func TestService_Transition_RejectsUnknownStatus(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	service := order.NewService(repo, nil)

	_, err := service.Transition(context.Background(), 10, 42, "shipped", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	repo.AssertNotCalled(t, "ApplyTransition")
}

func TestService_Transition_SurfacesRepositoryErrors(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	service := order.NewService(repo, publisher)
	ctx := context.Background()

	repo.On("ApplyTransition", ctx, 10, 42, domain.StatusPending, "", "").
		Return(nil, domain.ErrIllegalTransition).Once()

	_, err := service.Transition(ctx, 10, 42, domain.StatusPending, "", "")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	publisher.AssertNotCalled(t, "PublishOrderEvent")
}

func TestService_UpdateStatus_RoutesThroughTransition(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	service := order.NewService(repo, nil)
	ctx := context.Background()

	ok := &domain.Order{ID: 1, RestaurantID: 10, Status: domain.StatusReceived}
	repo.On("ApplyTransition", ctx, 10, 1, domain.StatusReceived, "admin", "").
		Return(&order.TransitionResult{Order: ok, From: domain.StatusPending, Applied: true}, nil).Once()
	repo.On("ApplyTransition", ctx, 10, 2, domain.StatusReceived, "admin", "").
		Return(nil, domain.ErrIllegalTransition).Once()

	results := service.UpdateStatus(ctx, 10, []int{1, 2}, domain.StatusReceived, "admin")

	require.Len(t, results, 2)
	assert.Equal(t, "ok", results[0].Status)
	assert.Equal(t, "error", results[1].Status)
	assert.Contains(t, results[1].Message, "illegal")
}

func TestService_Transition_RetriesOnConflict(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	service := order.NewService(repo, nil)
	ctx := context.Background()

	noop := &domain.Order{ID: 42, RestaurantID: 10, Status: domain.StatusReady}
	repo.On("ApplyTransition", ctx, 10, 42, domain.StatusReady, "", "").
		Return(nil, domain.ErrConflict).Once()
	repo.On("ApplyTransition", ctx, 10, 42, domain.StatusReady, "", "").
		Return(&order.TransitionResult{Order: noop, From: domain.StatusReady, Applied: false}, nil).Once()

	result, err := service.Transition(ctx, 10, 42, domain.StatusReady, "", "")
	require.NoError(t, err)
	assert.False(t, result.Applied)
}

func TestService_Transition_PersistentConflictSurfaces(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	service := order.NewService(repo, nil)
	ctx := context.Background()

	repo.On("ApplyTransition", ctx, 10, 42, domain.StatusReady, "", "").
		Return(nil, domain.ErrConflict).Twice()

	_, err := service.Transition(ctx, 10, 42, domain.StatusReady, "", "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestService_Create_RepositoryError(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	service := order.NewService(repo, nil)
	ctx := context.Background()

	repo.On("CreateOrder", ctx, mock.Anything).Return(errors.New("db down")).Once()

	_, err := service.Create(ctx, 10, 1, []domain.CartItem{
		{DishID: 1, UnitPrice: dec("5.00"), Quantity: 1},
	}, "")
	assert.Error(t, err)
}
