package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"orderflow/internal/domain"
	"orderflow/internal/notify"
	"orderflow/internal/order"
)

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder writes the order, its items and ingredient modifications,
// and the initial pending history row in one transaction. The customer
// visible order number is sequential per restaurant; an advisory lock on
// the restaurant id serializes concurrent allocations.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", o.RestaurantID); err != nil {
		return err
	}

	if err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(order_number), 0) + 1
		FROM orders
		WHERE restaurant_id = $1
	`, o.RestaurantID).Scan(&o.OrderNumber); err != nil {
		return err
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (restaurant_id, table_id, order_number, status, total_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, o.RestaurantID, o.TableID, o.OrderNumber, o.Status, o.TotalAmount, o.Notes).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, dish_id, dish_name, quantity, unit_price, total_price, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, o.ID, item.DishID, item.DishName, item.Quantity, item.UnitPrice, item.TotalPrice, item.Notes).
			Scan(&item.ID); err != nil {
			return err
		}
		for j := range item.Ingredients {
			ing := &item.Ingredients[j]
			ing.OrderItemID = item.ID
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO order_item_ingredients (order_item_id, ingredient_id, name, added, price_delta)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, item.ID, ing.IngredientID, ing.Name, ing.Added, ing.PriceDelta).Scan(&ing.ID); err != nil {
				return err
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_status_history (order_id, status, actor, notes)
		VALUES ($1, $2, '', '')
	`, o.ID, domain.StatusPending); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OrderRepository) GetOrder(ctx context.Context, restaurantID, orderID int) (*domain.Order, error) {
	var o domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, table_id, order_number, status, total_amount, COALESCE(notes, ''), created_at, updated_at
		FROM orders
		WHERE id = $1 AND restaurant_id = $2
	`, orderID, restaurantID).Scan(&o.ID, &o.RestaurantID, &o.TableID, &o.OrderNumber,
		&o.Status, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, dish_id, dish_name, quantity, unit_price, total_price, COALESCE(notes, '')
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	byID := map[int]int{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.DishName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.Notes); err != nil {
			continue
		}
		byID[item.ID] = len(items)
		items = append(items, item)
	}

	ingRows, err := r.DB.QueryContext(ctx, `
		SELECT oii.id, oii.order_item_id, oii.ingredient_id, oii.name, oii.added, oii.price_delta
		FROM order_item_ingredients oii
		JOIN order_items oi ON oii.order_item_id = oi.id
		WHERE oi.order_id = $1
		ORDER BY oii.id
	`, orderID)
	if err != nil {
		return items, err
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var ing domain.OrderItemIngredient
		if err := ingRows.Scan(&ing.ID, &ing.OrderItemID, &ing.IngredientID, &ing.Name, &ing.Added, &ing.PriceDelta); err != nil {
			continue
		}
		if idx, ok := byID[ing.OrderItemID]; ok {
			items[idx].Ingredients = append(items[idx].Ingredients, ing)
		}
	}
	return items, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context, restaurantID int, status *domain.Status) ([]domain.Order, error) {
	query := `
		SELECT id, restaurant_id, table_id, order_number, status, total_amount, COALESCE(notes, ''), created_at, updated_at
		FROM orders
		WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}
	if status != nil {
		query += " AND status = $2"
		args = append(args, *status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.TableID, &o.OrderNumber,
			&o.Status, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) ListHistory(ctx context.Context, restaurantID, orderID int) ([]domain.StatusHistory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT h.id, h.order_id, h.status, COALESCE(h.actor, ''), COALESCE(h.notes, ''), h.created_at
		FROM order_status_history h
		JOIN orders o ON h.order_id = o.id
		WHERE h.order_id = $1 AND o.restaurant_id = $2
		ORDER BY h.id
	`, orderID, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.StatusHistory
	for rows.Next() {
		var entry domain.StatusHistory
		if err := rows.Scan(&entry.ID, &entry.OrderID, &entry.Status, &entry.Actor, &entry.Notes, &entry.CreatedAt); err != nil {
			continue
		}
		history = append(history, entry)
	}
	return history, nil
}

// ApplyTransition serializes on the order row, validates the target
// against the graph under the lock, then commits history append, status
// update and notification creation as one unit. Requesting the status
// already reached is a committed no-op.
func (r *OrderRepository) ApplyTransition(ctx context.Context, restaurantID, orderID int, target domain.Status, actor, notes string) (*order.TransitionResult, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var o domain.Order
	err = tx.QueryRowContext(ctx, `
		SELECT id, restaurant_id, table_id, order_number, status, total_amount, COALESCE(notes, ''), created_at, updated_at
		FROM orders
		WHERE id = $1 AND restaurant_id = $2
		FOR UPDATE
	`, orderID, restaurantID).Scan(&o.ID, &o.RestaurantID, &o.TableID, &o.OrderNumber,
		&o.Status, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, wrapSerialization(err)
	}

	from := o.Status
	if from == target {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return &order.TransitionResult{Order: &o, From: from, Applied: false}, nil
	}

	if !from.CanTransition(target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, from, target)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_status_history (order_id, status, actor, notes)
		VALUES ($1, $2, $3, $4)
	`, orderID, target, actor, notes); err != nil {
		return nil, wrapSerialization(err)
	}

	if err := tx.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`, target, orderID).Scan(&o.UpdatedAt); err != nil {
		return nil, wrapSerialization(err)
	}
	o.Status = target

	var created []domain.Notification
	for _, req := range notify.OnTransition(&o, from, target) {
		notification, err := insertNotificationTx(ctx, tx, req)
		if err != nil {
			return nil, wrapSerialization(err)
		}
		created = append(created, notification)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapSerialization(err)
	}

	return &order.TransitionResult{
		Order:         &o,
		From:          from,
		Applied:       true,
		Notifications: created,
	}, nil
}

// wrapSerialization maps postgres serialization failures and deadlocks
// to the Conflict condition so callers re-read and retry.
func wrapSerialization(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01":
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
	}
	return err
}

var _ order.OrderRepository = (*OrderRepository)(nil)
