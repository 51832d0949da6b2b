package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rating is the aggregated customer rating reported by the catalog.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog entry as served by the remote catalog. The store treats
// it as opaque apart from ID, which identifies it in the cart.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// User is the identity kept in the auth state after a (mock) login.
type User struct {
	Email      string
	Token      string
	LoggedInAt time.Time
}
