package state

import "github.com/dmitrijs2005/storefront/internal/client/models"

// CartState holds the selected products. The same product may appear more
// than once.
type CartState struct {
	CartItems []models.Product
}

func DefaultCartState() *CartState {
	return &CartState{CartItems: []models.Product{}}
}

// ReduceCart applies action to the cart substate.
//
// CartAdd appends even when an entry with the same ID is already present.
// CartRemove keeps every entry whose ID differs, so all duplicates go at once;
// removing an absent ID yields a new, content-equal slice.
func ReduceCart(state *CartState, action Action) *CartState {
	if state == nil {
		state = DefaultCartState()
	}

	switch a := action.(type) {
	case CartAdd:
		items := make([]models.Product, len(state.CartItems), len(state.CartItems)+1)
		copy(items, state.CartItems)
		return &CartState{CartItems: append(items, a.Product)}

	case CartRemove:
		items := make([]models.Product, 0, len(state.CartItems))
		for _, item := range state.CartItems {
			if item.ID != a.ProductID {
				items = append(items, item)
			}
		}
		return &CartState{CartItems: items}

	default:
		return state
	}
}
