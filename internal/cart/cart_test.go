package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderflow/internal/cart"
	"orderflow/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func margherita(qty int) domain.CartItem {
	return domain.CartItem{
		DishID:    1,
		DishName:  "Margherita",
		UnitPrice: dec("9.50"),
		Quantity:  qty,
	}
}

func TestAdd_MergesSameCompositeKey(t *testing.T) {
	state, err := cart.Empty().Add(margherita(1))
	require.NoError(t, err)
	state, err = state.Add(margherita(2))
	require.NoError(t, err)

	require.Len(t, state.Items, 1, "same dish and selection merge into one line")
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 3, state.TotalItems)
	assert.True(t, state.TotalPrice.Equal(dec("28.50")), "got %s", state.TotalPrice)
}

func TestAdd_DifferentSelectionIsSeparateLine(t *testing.T) {
	withExtra := margherita(1)
	withExtra.Ingredients = []domain.IngredientSelection{
		{IngredientID: 7, Name: "extra cheese", Added: true, PriceDelta: dec("1.50")},
	}

	state, err := cart.Empty().Add(margherita(1))
	require.NoError(t, err)
	state, err = state.Add(withExtra)
	require.NoError(t, err)

	require.Len(t, state.Items, 2)
	assert.Equal(t, 2, state.TotalItems)
	assert.True(t, state.TotalPrice.Equal(dec("20.50")), "got %s", state.TotalPrice)
}

func TestAdd_RoundTripReturnsToEmpty(t *testing.T) {
	state, err := cart.Empty().Add(margherita(1))
	require.NoError(t, err)
	state, err = state.Add(margherita(2))
	require.NoError(t, err)

	state, err = state.Remove(state.Items[0].Key)
	require.NoError(t, err)

	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
	assert.True(t, state.TotalPrice.IsZero())
}

func TestAdd_RejectsBadValues(t *testing.T) {
	_, err := cart.Empty().Add(margherita(0))
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	bad := margherita(1)
	bad.UnitPrice = dec("-1.00")
	_, err = cart.Empty().Add(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestSetQuantity(t *testing.T) {
	state, err := cart.Empty().Add(margherita(2))
	require.NoError(t, err)
	key := state.Items[0].Key

	state, err = state.SetQuantity(key, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, state.TotalItems)
	assert.True(t, state.TotalPrice.Equal(dec("47.50")), "got %s", state.TotalPrice)
}

func TestSetQuantity_NonPositiveRemoves(t *testing.T) {
	state, err := cart.Empty().Add(margherita(2))
	require.NoError(t, err)
	key := state.Items[0].Key

	state, err = state.SetQuantity(key, 0)
	require.NoError(t, err)
	assert.Empty(t, state.Items)

	state, err = cart.Empty().Add(margherita(2))
	require.NoError(t, err)
	state, err = state.SetQuantity(state.Items[0].Key, -3)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestRemove_AbsentKeyIsNoop(t *testing.T) {
	state, err := cart.Empty().Add(margherita(1))
	require.NoError(t, err)

	next, err := state.Remove("42:nope")
	require.NoError(t, err)
	assert.Equal(t, state.TotalItems, next.TotalItems)
	assert.Len(t, next.Items, 1)
}

func TestClear(t *testing.T) {
	state, err := cart.Empty().Add(margherita(4))
	require.NoError(t, err)

	cleared := state.Clear()
	assert.Empty(t, cleared.Items)
	assert.Equal(t, 0, cleared.TotalItems)
	assert.True(t, cleared.TotalPrice.IsZero())
}

func TestValueSemantics_OriginalStateUntouched(t *testing.T) {
	first, err := cart.Empty().Add(margherita(1))
	require.NoError(t, err)

	_, err = first.Add(margherita(9))
	require.NoError(t, err)

	assert.Equal(t, 1, first.TotalItems, "operations must not mutate the receiver")
	assert.Equal(t, 1, first.Items[0].Quantity)
}

func TestItemKey_IngredientOrderIrrelevant(t *testing.T) {
	a := []domain.IngredientSelection{
		{IngredientID: 2, Added: true},
		{IngredientID: 1, Added: false},
	}
	b := []domain.IngredientSelection{
		{IngredientID: 1, Added: false},
		{IngredientID: 2, Added: true},
	}
	assert.Equal(t, cart.ItemKey(5, a), cart.ItemKey(5, b))
	assert.NotEqual(t, cart.ItemKey(5, a), cart.ItemKey(6, a))
}

func TestTotals_NeverTrustCallerTotal(t *testing.T) {
	// A poisoned incoming state recomputes totals from the items alone.
	item := margherita(2)
	state := cart.State{Items: nil, TotalItems: 99, TotalPrice: dec("999")}
	next, err := state.Add(item)
	require.NoError(t, err)
	assert.Equal(t, 2, next.TotalItems)
	assert.True(t, next.TotalPrice.Equal(dec("19.00")), "got %s", next.TotalPrice)
}
