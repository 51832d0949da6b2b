package state

import (
	"slices"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// CatalogState holds the products known to the client, in the order the
// catalog supplied them.
type CatalogState struct {
	Items []models.Product
}

func DefaultCatalogState() *CatalogState {
	return &CatalogState{Items: []models.Product{}}
}

// ReduceCatalog applies action to the catalog substate. CatalogSet replaces
// the list wholesale; the incoming slice is copied, never merged or deduped.
func ReduceCatalog(state *CatalogState, action Action) *CatalogState {
	if state == nil {
		state = DefaultCatalogState()
	}

	switch a := action.(type) {
	case CatalogSet:
		items := slices.Clone(a.Products)
		if items == nil {
			items = []models.Product{}
		}
		return &CatalogState{Items: items}
	default:
		return state
	}
}
