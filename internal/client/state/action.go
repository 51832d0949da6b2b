package state

import "github.com/dmitrijs2005/storefront/internal/client/models"

// Kind identifies the type of an Action.
type Kind int

const (
	KindAuthLogin Kind = iota + 1
	KindAuthLogout
	KindCatalogSet
	KindCartAdd
	KindCartRemove
)

func (k Kind) String() string {
	switch k {
	case KindAuthLogin:
		return "auth/login"
	case KindAuthLogout:
		return "auth/logout"
	case KindCatalogSet:
		return "catalog/set"
	case KindCartAdd:
		return "cart/add"
	case KindCartRemove:
		return "cart/remove"
	default:
		return "unknown"
	}
}

// Action is a request to change application state. The set of actions is
// closed: only the types in this package implement it.
type Action interface {
	Kind() Kind
	action()
}

// AuthLogin records user as the authenticated identity.
type AuthLogin struct {
	User *models.User
}

// AuthLogout clears the authenticated identity.
type AuthLogout struct{}

// CatalogSet replaces the known product list.
type CatalogSet struct {
	Products []models.Product
}

// CartAdd appends a product to the cart.
type CartAdd struct {
	Product models.Product
}

// CartRemove drops every cart entry with the given product id.
type CartRemove struct {
	ProductID int64
}

func (AuthLogin) Kind() Kind  { return KindAuthLogin }
func (AuthLogout) Kind() Kind { return KindAuthLogout }
func (CatalogSet) Kind() Kind { return KindCatalogSet }
func (CartAdd) Kind() Kind    { return KindCartAdd }
func (CartRemove) Kind() Kind { return KindCartRemove }

func (AuthLogin) action()  {}
func (AuthLogout) action() {}
func (CatalogSet) action() {}
func (CartAdd) action()    {}
func (CartRemove) action() {}

// NewAuthLogin returns an AuthLogin action. No validation is performed; a nil
// user is accepted and leaves the session unauthenticated.
func NewAuthLogin(user *models.User) Action {
	return AuthLogin{User: user}
}

func NewAuthLogout() Action {
	return AuthLogout{}
}

func NewCatalogSet(products []models.Product) Action {
	return CatalogSet{Products: products}
}

func NewCartAdd(product models.Product) Action {
	return CartAdd{Product: product}
}

func NewCartRemove(productID int64) Action {
	return CartRemove{ProductID: productID}
}
