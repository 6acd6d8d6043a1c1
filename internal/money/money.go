package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"orderflow/internal/domain"
)

// ItemTotal computes unitPrice*qty + sum(deltas)*qty. Ingredient deltas
// apply per unit ordered. Values are kept at full precision; rounding
// happens once, at the persistence boundary (RoundPersist).
func ItemTotal(unitPrice decimal.Decimal, quantity int, deltas []decimal.Decimal) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative quantity %d", domain.ErrInvalidValue, quantity)
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative unit price %s", domain.ErrInvalidValue, unitPrice)
	}

	perUnit := unitPrice
	for _, delta := range deltas {
		perUnit = perUnit.Add(delta)
	}
	return perUnit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// OrderTotal recomputes an order's total from its items. An empty item
// set yields zero, not an error.
func OrderTotal(items []domain.OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		deltas := make([]decimal.Decimal, 0, len(item.Ingredients))
		for _, ing := range item.Ingredients {
			deltas = append(deltas, ing.PriceDelta)
		}
		itemTotal, err := ItemTotal(item.UnitPrice, item.Quantity, deltas)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(itemTotal)
	}
	return total, nil
}

// CartTotals returns the summed quantity (not distinct line count) and
// the summed line totals for a cart.
func CartTotals(items []domain.CartItem) (int, decimal.Decimal, error) {
	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range items {
		deltas := make([]decimal.Decimal, 0, len(item.Ingredients))
		for _, ing := range item.Ingredients {
			deltas = append(deltas, ing.PriceDelta)
		}
		itemTotal, err := ItemTotal(item.UnitPrice, item.Quantity, deltas)
		if err != nil {
			return 0, decimal.Zero, err
		}
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(itemTotal)
	}
	return totalItems, totalPrice, nil
}

// RoundPersist applies the half-up two-decimal rounding used whenever a
// monetary value is written out.
func RoundPersist(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
