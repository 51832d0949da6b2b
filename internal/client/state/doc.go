// Package state is the application state container of the storefront client.
//
// # Overview
//
// State lives in a single Store. Every change is requested by dispatching an
// Action; the Store runs the composer (Reduce), which hands the action to
// three independent reducers:
//
//	auth     -> ReduceAuth     (*AuthState)
//	products -> ReduceCatalog  (*CatalogState)
//	cart     -> ReduceCart     (*CartState)
//
// The results are combined into a new *AppState which replaces the previous
// one, and subscribers are notified. Reducers are pure and total: an action a
// reducer does not handle returns the incoming substate pointer unchanged, so
// observers can detect no-ops with ==.
//
// # Immutability
//
// AppState and its substates are never modified after construction. Callers
// reading GetState must treat the returned values as read-only.
package state
