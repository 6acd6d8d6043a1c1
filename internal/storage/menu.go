package storage

import (
	"context"
	"database/sql"
	"fmt"

	"orderflow/internal/domain"
	"orderflow/internal/menu"
)

type MenuRepository struct {
	DB *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (name, address, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, rest.Name, rest.Address, rest.Description).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *MenuRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *MenuRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), created_at
		FROM restaurants
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (r *MenuRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx, `
		UPDATE restaurants SET name = $1, address = $2, description = $3
		WHERE id = $4
		RETURNING created_at
	`, rest.Name, rest.Address, rest.Description, rest.ID).Scan(&rest.CreatedAt)
}

func (r *MenuRepository) DeleteRestaurant(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *MenuRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO dishes (restaurant_id, name, description, price, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.Available).
		Scan(&dish.ID, &dish.CreatedAt); err != nil {
		return err
	}

	for i := range dish.Ingredients {
		ing := &dish.Ingredients[i]
		ing.DishID = dish.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO dish_ingredients (dish_id, name, is_default, price_delta)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, dish.ID, ing.Name, ing.Default, ing.PriceDelta).Scan(&ing.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *MenuRepository) GetDish(ctx context.Context, restaurantID, dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, available, created_at
		FROM dishes
		WHERE id = $1 AND restaurant_id = $2
	`, dishID, restaurantID).Scan(&dish.ID, &dish.RestaurantID, &dish.Name,
		&dish.Description, &dish.Price, &dish.Available, &dish.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: dish %d", domain.ErrNotFound, dishID)
	}
	if err != nil {
		return nil, err
	}

	ingredients, err := r.loadIngredients(ctx, dishID)
	if err != nil {
		return nil, err
	}
	dish.Ingredients = ingredients
	return &dish, nil
}

func (r *MenuRepository) loadIngredients(ctx context.Context, dishID int) ([]domain.DishIngredient, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, dish_id, name, is_default, price_delta
		FROM dish_ingredients
		WHERE dish_id = $1
		ORDER BY id
	`, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []domain.DishIngredient
	for rows.Next() {
		var ing domain.DishIngredient
		if err := rows.Scan(&ing.ID, &ing.DishID, &ing.Name, &ing.Default, &ing.PriceDelta); err != nil {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

func (r *MenuRepository) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, available, created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name,
			&dish.Description, &dish.Price, &dish.Available, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *MenuRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE dishes
		SET name = $1, description = $2, price = $3, available = $4
		WHERE id = $5 AND restaurant_id = $6
	`, dish.Name, dish.Description, dish.Price, dish.Available, dish.ID, dish.RestaurantID)
	return err
}

func (r *MenuRepository) DeleteDish(ctx context.Context, restaurantID, dishID int) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM dishes WHERE id = $1 AND restaurant_id = $2", dishID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *MenuRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO tables (restaurant_id, number)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, table.RestaurantID, table.Number).Scan(&table.ID, &table.CreatedAt)
}

func (r *MenuRepository) GetTable(ctx context.Context, restaurantID, tableID int) (*domain.Table, error) {
	var table domain.Table
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, number, COALESCE(qr_code, ''), created_at
		FROM tables
		WHERE id = $1 AND restaurant_id = $2
	`, tableID, restaurantID).Scan(&table.ID, &table.RestaurantID, &table.Number, &table.QRCode, &table.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: table %d", domain.ErrNotFound, tableID)
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *MenuRepository) ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, number, created_at
		FROM tables
		WHERE restaurant_id = $1
		ORDER BY number
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.RestaurantID, &table.Number, &table.CreatedAt); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (r *MenuRepository) SaveTableQRCode(ctx context.Context, tableID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE tables SET qr_code = $1 WHERE id = $2", qr, tableID)
	return err
}

var _ menu.MenuRepository = (*MenuRepository)(nil)
