package state

import (
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/shopspring/decimal"
)

// FeaturedCount is how many products the home view shows.
const FeaturedCount = 6

// FeaturedProducts returns at most n products from the head of the catalog.
func FeaturedProducts(s *AppState, n int) []models.Product {
	items := s.Products.Items
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n:n]
}

// FindProduct looks a product up in the catalog by id.
func FindProduct(s *AppState, id int64) (models.Product, bool) {
	for _, p := range s.Products.Items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func CartCount(s *AppState) int {
	return len(s.Cart.CartItems)
}

// CartTotal sums the prices of all cart entries, duplicates included.
func CartTotal(s *AppState) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Cart.CartItems {
		total = total.Add(item.Price)
	}
	return total
}

func IsAuthenticated(s *AppState) bool {
	return s.Auth.IsAuthenticated
}

// CurrentUser returns the logged-in user or nil.
func CurrentUser(s *AppState) *models.User {
	return s.Auth.User
}
