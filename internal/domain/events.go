package domain

import "time"

// OrderEvent is published to kafka after a transition commits; consumers
// treat it as a delivery signal, the database row is the source of truth.
type OrderEvent struct {
	Type         string    `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	OrderID      int       `json:"order_id"`
	OrderNumber  int       `json:"order_number"`
	From         Status    `json:"from"`
	To           Status    `json:"to"`
	Timestamp    time.Time `json:"timestamp"`
}

const OrderEventStatusChanged = "order_status_changed"

type RatingMessage struct {
	Type         string       `json:"type"`
	RestaurantID int          `json:"restaurant_id"`
	OrderID      int          `json:"order_id"`
	Target       RatingTarget `json:"target"`
	TargetID     int          `json:"target_id"`
	Rating       int          `json:"rating"`
	Timestamp    time.Time    `json:"timestamp"`
}

const RatingMessageNew = "new_rating"
