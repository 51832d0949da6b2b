package state

// AppState is the composed state tree. Each key is owned by exactly one
// reducer.
type AppState struct {
	Auth     *AuthState
	Products *CatalogState
	Cart     *CartState
}

// Reducer maps the current state and an action to the next state.
type Reducer func(state *AppState, action Action) *AppState

// Reduce is the root reducer. With a nil state every substate starts from its
// reducer's default. Each reducer sees only its own substate.
func Reduce(state *AppState, action Action) *AppState {
	if state == nil {
		state = &AppState{}
	}

	return &AppState{
		Auth:     ReduceAuth(state.Auth, action),
		Products: ReduceCatalog(state.Products, action),
		Cart:     ReduceCart(state.Cart, action),
	}
}

// InitialState returns the state a fresh Store starts with.
func InitialState() *AppState {
	return &AppState{
		Auth:     DefaultAuthState(),
		Products: DefaultCatalogState(),
		Cart:     DefaultCartState(),
	}
}
