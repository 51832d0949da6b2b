package state

import (
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/shopspring/decimal"
)

// bogusAction is an action no reducer handles.
type bogusAction struct{}

func (bogusAction) Kind() Kind { return Kind(99) }
func (bogusAction) action()    {}

func product(id int64, title string, price int64) models.Product {
	return models.Product{ID: id, Title: title, Price: decimal.NewFromInt(price)}
}
