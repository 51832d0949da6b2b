package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/shopspring/decimal"
)

// CartService turns product ids chosen in the UI into cart actions.
type CartService interface {
	// Add puts the catalog product with id into the cart. Unknown ids fail
	// with common.ErrProductNotFound and leave the store untouched.
	Add(ctx context.Context, id int64) (models.Product, error)

	// Remove drops every cart entry with id.
	Remove(ctx context.Context, id int64) error

	// Items returns a copy of the cart entries in insertion order.
	Items(ctx context.Context) []models.Product
	Total(ctx context.Context) decimal.Decimal
}

type cartService struct {
	dispatcher state.Dispatcher
	getter     state.Getter
}

func NewCartService(d state.Dispatcher, g state.Getter) CartService {
	return &cartService{dispatcher: d, getter: g}
}

func (c *cartService) Add(ctx context.Context, id int64) (models.Product, error) {
	p, ok := state.FindProduct(c.getter.GetState(), id)
	if !ok {
		return models.Product{}, fmt.Errorf("add %d: %w", id, common.ErrProductNotFound)
	}
	c.dispatcher.Dispatch(state.NewCartAdd(p))
	return p, nil
}

func (c *cartService) Remove(ctx context.Context, id int64) error {
	c.dispatcher.Dispatch(state.NewCartRemove(id))
	return nil
}

func (c *cartService) Items(ctx context.Context) []models.Product {
	return slices.Clone(c.getter.GetState().Cart.CartItems)
}

func (c *cartService) Total(ctx context.Context) decimal.Decimal {
	return state.CartTotal(c.getter.GetState())
}
