package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	TableID      int             `json:"table_id"`
	OrderNumber  int             `json:"order_number"`
	Status       Status          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Items        []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	ID          int                   `json:"id"`
	OrderID     int                   `json:"order_id"`
	DishID      int                   `json:"dish_id"`
	DishName    string                `json:"dish_name"`
	Quantity    int                   `json:"quantity"`
	UnitPrice   decimal.Decimal       `json:"unit_price"`
	TotalPrice  decimal.Decimal       `json:"total_price"`
	Notes       string                `json:"notes,omitempty"`
	Ingredients []OrderItemIngredient `json:"ingredients,omitempty"`
}

type OrderItemIngredient struct {
	ID           int             `json:"id"`
	OrderItemID  int             `json:"order_item_id"`
	IngredientID int             `json:"ingredient_id"`
	Name         string          `json:"name"`
	Added        bool            `json:"added"`
	PriceDelta   decimal.Decimal `json:"price_delta"`
}

// StatusHistory is append-only: one row per accepted transition. The
// order's current status is always the status of the newest row.
type StatusHistory struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	Status    Status    `json:"status"`
	Actor     string    `json:"actor,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Audience string

const (
	AudienceWaiter   Audience = "waiter"
	AudienceCustomer Audience = "customer"
)

func (a Audience) Valid() bool {
	return a == AudienceWaiter || a == AudienceCustomer
}

type NotificationType string

const (
	NotificationAccepted  NotificationType = "accepted"
	NotificationCancelled NotificationType = "cancelled"
	NotificationReady     NotificationType = "ready"
)

// Notification references its order weakly: OrderNumber, OrderStatus and
// TableNumber are filled by a lookup join at read time and stay nil when
// the order or table no longer exists.
type Notification struct {
	ID           int              `json:"id"`
	RestaurantID int              `json:"restaurant_id"`
	Audience     Audience         `json:"audience"`
	Type         NotificationType `json:"type"`
	Message      string           `json:"message"`
	Read         bool             `json:"read"`
	OrderID      *int             `json:"order_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`

	OrderNumber *int    `json:"order_number,omitempty"`
	OrderStatus *Status `json:"order_status,omitempty"`
	TableNumber *int    `json:"table_number,omitempty"`
}

// NotificationRequest is what the fan-out derives from an accepted
// transition, before anything is persisted.
type NotificationRequest struct {
	RestaurantID int              `json:"restaurant_id"`
	OrderID      int              `json:"order_id"`
	Audience     Audience         `json:"audience"`
	Type         NotificationType `json:"type"`
	Message      string           `json:"message"`
}

type IngredientSelection struct {
	IngredientID int             `json:"ingredient_id"`
	Name         string          `json:"name"`
	Added        bool            `json:"added"`
	PriceDelta   decimal.Decimal `json:"price_delta"`
}

// CartItem lives client-side until checkout; Key is the composite
// dish + ingredient-selection identity, not a server id.
type CartItem struct {
	Key         string                `json:"key"`
	DishID      int                   `json:"dish_id"`
	DishName    string                `json:"dish_name"`
	UnitPrice   decimal.Decimal       `json:"unit_price"`
	Quantity    int                   `json:"quantity"`
	Ingredients []IngredientSelection `json:"ingredients,omitempty"`
	Notes       string                `json:"notes,omitempty"`
}

type RatingTarget string

const (
	TargetRestaurant RatingTarget = "restaurant"
	TargetWaiter     RatingTarget = "waiter"
	TargetDish       RatingTarget = "dish"
)

type RatingEvent struct {
	ID           int          `json:"id"`
	RestaurantID int          `json:"restaurant_id"`
	OrderID      int          `json:"order_id"`
	Target       RatingTarget `json:"target"`
	TargetID     int          `json:"target_id"`
	Rating       int          `json:"rating"`
	Comment      string       `json:"comment,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Dish struct {
	ID           int              `json:"id"`
	RestaurantID int              `json:"restaurant_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	Available    bool             `json:"available"`
	CreatedAt    time.Time        `json:"created_at"`
	Ingredients  []DishIngredient `json:"ingredients,omitempty"`
}

type DishIngredient struct {
	ID         int             `json:"id"`
	DishID     int             `json:"dish_id"`
	Name       string          `json:"name"`
	Default    bool            `json:"default"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

type Table struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Number       int       `json:"number"`
	QRCode       []byte    `json:"qr_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
