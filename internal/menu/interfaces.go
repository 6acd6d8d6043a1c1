package menu

import (
	"context"

	"orderflow/internal/domain"
)

type ServiceInterface interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int) error

	CreateDish(ctx context.Context, dish *domain.Dish) error
	GetDish(ctx context.Context, restaurantID, dishID int) (*domain.Dish, error)
	ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error)
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, restaurantID, dishID int) error

	CreateTable(ctx context.Context, table *domain.Table) error
	ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error)
	TableQRCode(ctx context.Context, restaurantID, tableID int) ([]byte, error)
}

type MenuRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int) (int64, error)

	CreateDish(ctx context.Context, dish *domain.Dish) error
	GetDish(ctx context.Context, restaurantID, dishID int) (*domain.Dish, error)
	ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error)
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, restaurantID, dishID int) (int64, error)

	CreateTable(ctx context.Context, table *domain.Table) error
	GetTable(ctx context.Context, restaurantID, tableID int) (*domain.Table, error)
	ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error)
	SaveTableQRCode(ctx context.Context, tableID int, qr []byte) error
}

type QRGenerator interface {
	Generate(restaurantID, tableID int) ([]byte, error)
}
