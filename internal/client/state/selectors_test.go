package state

import (
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFeaturedProducts(t *testing.T) {
	var items []models.Product
	for i := int64(1); i <= 8; i++ {
		items = append(items, product(i, "P", i))
	}
	s := Reduce(nil, NewCatalogSet(items))

	got := FeaturedProducts(s, FeaturedCount)
	assert.Len(t, got, 6)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(6), got[5].ID)

	assert.Len(t, FeaturedProducts(s, 100), 8)
	assert.Empty(t, FeaturedProducts(s, -1))
	assert.Empty(t, FeaturedProducts(InitialState(), FeaturedCount))
}

func TestFindProduct(t *testing.T) {
	s := Reduce(nil, NewCatalogSet([]models.Product{product(1, "A", 10), product(2, "B", 20)}))

	p, ok := FindProduct(s, 2)
	assert.True(t, ok)
	assert.Equal(t, "B", p.Title)

	_, ok = FindProduct(s, 3)
	assert.False(t, ok)
}

func TestCartCountAndTotal(t *testing.T) {
	s := InitialState()
	assert.Zero(t, CartCount(s))
	assert.True(t, CartTotal(s).IsZero())

	a := models.Product{ID: 1, Price: decimal.RequireFromString("109.95")}
	b := models.Product{ID: 2, Price: decimal.RequireFromString("22.3")}
	s = Reduce(s, NewCartAdd(a))
	s = Reduce(s, NewCartAdd(a))
	s = Reduce(s, NewCartAdd(b))

	assert.Equal(t, 3, CartCount(s))
	assert.Equal(t, "242.2", CartTotal(s).String())
}

func TestAuthSelectors(t *testing.T) {
	s := InitialState()
	assert.False(t, IsAuthenticated(s))
	assert.Nil(t, CurrentUser(s))

	u := &models.User{Email: "a@b.com"}
	s = Reduce(s, NewAuthLogin(u))
	assert.True(t, IsAuthenticated(s))
	assert.Same(t, u, CurrentUser(s))
}
