// Package common defines sentinel errors shared by the storefront client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Catalog errors.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrProductNotFound    = errors.New("product not found")

	// Session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
