package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"orderflow/internal/domain"
	"orderflow/internal/money"
)

type Service struct {
	repo      OrderRepository
	publisher EventPublisher
}

func NewService(repo OrderRepository, publisher EventPublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// Create converts a finalized cart item set into a persisted order. Unit
// prices and ingredient deltas are snapshots handed in by the caller;
// line and order totals are recomputed here, never trusted from input.
func (s *Service) Create(ctx context.Context, restaurantID, tableID int, items []domain.CartItem, notes string) (*domain.Order, error) {
	if restaurantID <= 0 || tableID <= 0 {
		return nil, fmt.Errorf("%w: restaurant and table are required", domain.ErrInvalidValue)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", domain.ErrInvalidValue)
	}

	order := &domain.Order{
		RestaurantID: restaurantID,
		TableID:      tableID,
		Status:       domain.StatusPending,
		Notes:        notes,
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity %d for dish %d", domain.ErrInvalidValue, item.Quantity, item.DishID)
		}
		orderItem := domain.OrderItem{
			DishID:    item.DishID,
			DishName:  item.DishName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Notes:     item.Notes,
		}
		for _, ing := range item.Ingredients {
			orderItem.Ingredients = append(orderItem.Ingredients, domain.OrderItemIngredient{
				IngredientID: ing.IngredientID,
				Name:         ing.Name,
				Added:        ing.Added,
				PriceDelta:   ing.PriceDelta,
			})
		}

		total, err := money.OrderTotal([]domain.OrderItem{orderItem})
		if err != nil {
			return nil, err
		}
		orderItem.TotalPrice = money.RoundPersist(total)
		order.Items = append(order.Items, orderItem)
	}

	total, err := money.OrderTotal(order.Items)
	if err != nil {
		return nil, err
	}
	order.TotalAmount = money.RoundPersist(total)

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, restaurantID, orderID int) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, restaurantID, orderID)
}

func (s *Service) List(ctx context.Context, restaurantID int, status *domain.Status) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, restaurantID, status)
}

func (s *Service) History(ctx context.Context, restaurantID, orderID int) ([]domain.StatusHistory, error) {
	return s.repo.ListHistory(ctx, restaurantID, orderID)
}

// Transition validates the target against the lifecycle graph and applies
// status update, history append and notification creation atomically.
// Requesting the status the order already has is a no-op, not an error.
// A serialization conflict is re-applied once under the fresh row state;
// the idempotent no-op makes the second attempt safe.
func (s *Service) Transition(ctx context.Context, restaurantID, orderID int, target domain.Status, actor, notes string) (*TransitionResult, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidValue, target)
	}

	result, err := s.repo.ApplyTransition(ctx, restaurantID, orderID, target, actor, notes)
	if errors.Is(err, domain.ErrConflict) {
		result, err = s.repo.ApplyTransition(ctx, restaurantID, orderID, target, actor, notes)
	}
	if err != nil {
		return nil, err
	}

	if result.Applied && s.publisher != nil {
		event := domain.OrderEvent{
			Type:         domain.OrderEventStatusChanged,
			RestaurantID: restaurantID,
			OrderID:      orderID,
			OrderNumber:  result.Order.OrderNumber,
			From:         result.From,
			To:           target,
			Timestamp:    time.Now(),
		}
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("Warning: failed to publish status event for order %d: %v", orderID, err)
		}
	}
	return result, nil
}

// UpdateStatus is the bulk/administrative entry point. Every order goes
// through Transition; there is no path around the graph.
func (s *Service) UpdateStatus(ctx context.Context, restaurantID int, orderIDs []int, target domain.Status, actor string) []StatusUpdateResult {
	results := make([]StatusUpdateResult, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		if _, err := s.Transition(ctx, restaurantID, orderID, target, actor, ""); err != nil {
			results = append(results, StatusUpdateResult{
				OrderID: orderID,
				Status:  "error",
				Message: err.Error(),
			})
			continue
		}
		results = append(results, StatusUpdateResult{OrderID: orderID, Status: "ok"})
	}
	return results
}

var _ ServiceInterface = (*Service)(nil)
