// Package services contains the application services of the storefront
// client. Services sit between the CLI and the state container: they validate
// input at the boundary, talk to external collaborators, and turn the outcome
// into dispatched actions.
//
// This file defines the mock authentication service.
package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTTL is the lifetime written into issued session tokens.
const SessionTTL = 24 * time.Hour

// AuthService logs users in and out.
//
// Contract:
//   - Login: accept any password for a well-formed email, issue a session
//     token and dispatch AuthLogin.
//   - Logout: dispatch AuthLogout.
//   - Current: report the logged in user, or common.ErrNotAuthenticated.
//
// No credential is ever verified.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
}

type authService struct {
	dispatcher state.Dispatcher
	getter     state.Getter
	signingKey []byte
	now        func() time.Time
}

// NewAuthService constructs an AuthService dispatching to d and reading the
// session from g. Tokens are signed with a random per-process key.
func NewAuthService(d state.Dispatcher, g state.Getter) AuthService {
	return &authService{
		dispatcher: d,
		getter:     g,
		signingKey: common.GenerateRandByteArray(32),
		now:        time.Now,
	}
}

// Login wipes password before returning. It fails with
// common.ErrInvalidCredentials when email is not an address.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrInvalidCredentials)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: %q is not an email address", common.ErrInvalidCredentials, email)
	}

	now := a.now()
	token, err := a.issueToken(email, now)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	user := &models.User{Email: email, Token: token, LoggedInAt: now}
	a.dispatcher.Dispatch(state.NewAuthLogin(user))
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.dispatcher.Dispatch(state.NewAuthLogout())
	return nil
}

func (a *authService) Current(ctx context.Context) (*models.User, error) {
	s := a.getter.GetState()
	if !state.IsAuthenticated(s) {
		return nil, common.ErrNotAuthenticated
	}
	return state.CurrentUser(s), nil
}

func (a *authService) issueToken(email string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   email,
		Issuer:    "storefront",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signingKey)
}
