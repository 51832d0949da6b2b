package state

import "github.com/dmitrijs2005/storefront/internal/client/models"

// AuthState holds the session identity. IsAuthenticated is true iff User is
// set.
type AuthState struct {
	User            *models.User
	IsAuthenticated bool
}

// DefaultAuthState returns the logged-out state.
func DefaultAuthState() *AuthState {
	return &AuthState{}
}

// ReduceAuth applies action to the auth substate. A nil state is treated as
// DefaultAuthState.
func ReduceAuth(state *AuthState, action Action) *AuthState {
	if state == nil {
		state = DefaultAuthState()
	}

	switch a := action.(type) {
	case AuthLogin:
		return &AuthState{User: a.User, IsAuthenticated: a.User != nil}
	case AuthLogout:
		return &AuthState{}
	default:
		return state
	}
}
