package cart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"orderflow/internal/domain"
	"orderflow/internal/money"
)

// State is an immutable snapshot of an in-progress order draft. Every
// operation returns a new State with totals recomputed; a caller-supplied
// total is never trusted.
type State struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

func Empty() State {
	return State{Items: nil, TotalItems: 0, TotalPrice: decimal.Zero}
}

// ItemKey builds the composite identity of a cart line: the dish plus a
// canonical signature of its ingredient selection. Two adds with the
// same dish and the same selection merge into one line.
func ItemKey(dishID int, ingredients []domain.IngredientSelection) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		mark := "-"
		if ing.Added {
			mark = "+"
		}
		parts = append(parts, fmt.Sprintf("%s%d", mark, ing.IngredientID))
	}
	sort.Strings(parts)
	return fmt.Sprintf("%d:%s", dishID, strings.Join(parts, ","))
}

// Add merges the incoming item into the cart: an existing line with the
// same composite key has its quantity incremented, otherwise the item is
// appended.
func (s State) Add(item domain.CartItem) (State, error) {
	if item.Quantity <= 0 {
		return s, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidValue, item.Quantity)
	}
	if item.UnitPrice.IsNegative() {
		return s, fmt.Errorf("%w: negative unit price %s", domain.ErrInvalidValue, item.UnitPrice)
	}

	item.Key = ItemKey(item.DishID, item.Ingredients)

	items := make([]domain.CartItem, len(s.Items))
	copy(items, s.Items)

	merged := false
	for i := range items {
		if items[i].Key == item.Key {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return withTotals(items)
}

// Remove drops the line with the given key. Removing an absent key is a
// no-op, not an error.
func (s State) Remove(key string) (State, error) {
	items := make([]domain.CartItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Key != key {
			items = append(items, item)
		}
	}
	return withTotals(items)
}

// SetQuantity sets the line quantity; a quantity of zero or less removes
// the line entirely.
func (s State) SetQuantity(key string, quantity int) (State, error) {
	if quantity <= 0 {
		return s.Remove(key)
	}
	items := make([]domain.CartItem, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].Key == key {
			items[i].Quantity = quantity
			break
		}
	}
	return withTotals(items)
}

func (s State) Clear() State {
	return Empty()
}

func withTotals(items []domain.CartItem) (State, error) {
	totalItems, totalPrice, err := money.CartTotals(items)
	if err != nil {
		return Empty(), err
	}
	if len(items) == 0 {
		items = nil
	}
	return State{Items: items, TotalItems: totalItems, TotalPrice: totalPrice}, nil
}
