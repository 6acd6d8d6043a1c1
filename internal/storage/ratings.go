package storage

import (
	"context"
	"database/sql"

	"orderflow/internal/domain"
	"orderflow/internal/review"
)

type RatingRepository struct {
	DB *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) ValidateOrderDelivered(ctx context.Context, orderID, restaurantID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM orders
			WHERE id = $1 AND restaurant_id = $2 AND status = $3
		)
	`, orderID, restaurantID, domain.StatusDelivered).Scan(&exists)
	return exists, err
}

func (r *RatingRepository) GetExistingRatingID(ctx context.Context, event *domain.RatingEvent) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM ratings
		WHERE restaurant_id = $1 AND order_id = $2 AND target = $3 AND target_id = $4
	`, event.RestaurantID, event.OrderID, event.Target, event.TargetID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RatingRepository) InsertRating(ctx context.Context, event *domain.RatingEvent) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO ratings (restaurant_id, order_id, target, target_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, event.RestaurantID, event.OrderID, event.Target, event.TargetID, event.Rating, event.Comment).
		Scan(&event.ID, &event.CreatedAt)
}

func (r *RatingRepository) UpdateRating(ctx context.Context, id int, event *domain.RatingEvent) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE ratings
		SET rating = $1, comment = $2, created_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, event.Rating, event.Comment, id)
	return err
}

func (r *RatingRepository) ListRatings(ctx context.Context, restaurantID int, target domain.RatingTarget, targetID int) ([]domain.RatingEvent, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, order_id, target, target_id, rating, COALESCE(comment, ''), created_at
		FROM ratings
		WHERE restaurant_id = $1 AND target = $2 AND target_id = $3
		ORDER BY created_at DESC
	`, restaurantID, target, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRatings(rows)
}

func (r *RatingRepository) ListAllRatings(ctx context.Context, restaurantID int) ([]domain.RatingEvent, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, order_id, target, target_id, rating, COALESCE(comment, ''), created_at
		FROM ratings
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRatings(rows)
}

func scanRatings(rows *sql.Rows) ([]domain.RatingEvent, error) {
	var events []domain.RatingEvent
	for rows.Next() {
		var event domain.RatingEvent
		if err := rows.Scan(&event.ID, &event.RestaurantID, &event.OrderID, &event.Target,
			&event.TargetID, &event.Rating, &event.Comment, &event.CreatedAt); err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

var _ review.RatingRepository = (*RatingRepository)(nil)
