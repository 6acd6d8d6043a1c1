package order

import (
	"context"

	"orderflow/internal/domain"
)

// TransitionResult carries everything a committed transition produced:
// the updated order, the status it moved from, and the notifications the
// fan-out derived. Applied is false for the idempotent no-op case.
type TransitionResult struct {
	Order         *domain.Order
	From          domain.Status
	Applied       bool
	Notifications []domain.Notification
}

type ServiceInterface interface {
	Create(ctx context.Context, restaurantID, tableID int, items []domain.CartItem, notes string) (*domain.Order, error)
	Get(ctx context.Context, restaurantID, orderID int) (*domain.Order, error)
	List(ctx context.Context, restaurantID int, status *domain.Status) ([]domain.Order, error)
	History(ctx context.Context, restaurantID, orderID int) ([]domain.StatusHistory, error)
	Transition(ctx context.Context, restaurantID, orderID int, target domain.Status, actor, notes string) (*TransitionResult, error)
	UpdateStatus(ctx context.Context, restaurantID int, orderIDs []int, target domain.Status, actor string) []StatusUpdateResult
}

// StatusUpdateResult reports one order's outcome in a bulk update.
type StatusUpdateResult struct {
	OrderID int    `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, restaurantID, orderID int) (*domain.Order, error)
	ListOrders(ctx context.Context, restaurantID int, status *domain.Status) ([]domain.Order, error)
	ListHistory(ctx context.Context, restaurantID, orderID int) ([]domain.StatusHistory, error)
	// ApplyTransition commits status update, history append and
	// notification creation as one unit, serialized per order.
	ApplyTransition(ctx context.Context, restaurantID, orderID int, target domain.Status, actor, notes string) (*TransitionResult, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}
