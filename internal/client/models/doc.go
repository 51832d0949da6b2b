// Package models defines client-side data records: catalog products and the
// logged-in user.
package models
