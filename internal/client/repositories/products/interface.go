package products

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Repository stores one catalog snapshot.
type Repository interface {
	// ReplaceAll discards the stored catalog and stores items in order.
	ReplaceAll(ctx context.Context, items []models.Product) error

	// GetAll returns the stored catalog in its original order, or an empty
	// slice when nothing has been cached yet.
	GetAll(ctx context.Context) ([]models.Product, error)
}
