package menu

import (
	"context"
	"fmt"

	"orderflow/internal/domain"
)

type Service struct {
	repo      MenuRepository
	qrEncoder QRGenerator
}

func NewService(repo MenuRepository, qr QRGenerator) *Service {
	return &Service{repo: repo, qrEncoder: qr}
}

func (s *Service) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	if rest.Name == "" {
		return fmt.Errorf("%w: restaurant name is required", domain.ErrInvalidValue)
	}
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *Service) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *Service) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *Service) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return s.repo.UpdateRestaurant(ctx, rest)
}

func (s *Service) DeleteRestaurant(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}
	return nil
}

func (s *Service) CreateDish(ctx context.Context, dish *domain.Dish) error {
	if dish.RestaurantID <= 0 || dish.Name == "" {
		return fmt.Errorf("%w: dish needs a restaurant and a name", domain.ErrInvalidValue)
	}
	if dish.Price.IsNegative() {
		return fmt.Errorf("%w: negative price %s", domain.ErrInvalidValue, dish.Price)
	}
	return s.repo.CreateDish(ctx, dish)
}

func (s *Service) GetDish(ctx context.Context, restaurantID, dishID int) (*domain.Dish, error) {
	return s.repo.GetDish(ctx, restaurantID, dishID)
}

func (s *Service) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(ctx, restaurantID)
}

func (s *Service) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	if dish.Price.IsNegative() {
		return fmt.Errorf("%w: negative price %s", domain.ErrInvalidValue, dish.Price)
	}
	return s.repo.UpdateDish(ctx, dish)
}

func (s *Service) DeleteDish(ctx context.Context, restaurantID, dishID int) error {
	affected, err := s.repo.DeleteDish(ctx, restaurantID, dishID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: dish %d", domain.ErrNotFound, dishID)
	}
	return nil
}

// CreateTable persists the table and attaches its menu QR code. A QR
// encoding failure doesn't fail the create; the code is regenerated on
// the next fetch.
func (s *Service) CreateTable(ctx context.Context, table *domain.Table) error {
	if table.RestaurantID <= 0 || table.Number <= 0 {
		return fmt.Errorf("%w: table needs a restaurant and a positive number", domain.ErrInvalidValue)
	}
	if err := s.repo.CreateTable(ctx, table); err != nil {
		return err
	}
	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(table.RestaurantID, table.ID); err == nil {
			if err := s.repo.SaveTableQRCode(ctx, table.ID, qr); err == nil {
				table.QRCode = qr
			}
		}
	}
	return nil
}

func (s *Service) ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error) {
	return s.repo.ListTables(ctx, restaurantID)
}

func (s *Service) TableQRCode(ctx context.Context, restaurantID, tableID int) ([]byte, error) {
	table, err := s.repo.GetTable(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}
	if len(table.QRCode) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(restaurantID, tableID); err == nil {
			_ = s.repo.SaveTableQRCode(ctx, tableID, regenerated)
			return regenerated, nil
		}
	}
	return table.QRCode, nil
}

var _ ServiceInterface = (*Service)(nil)
