package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/common"
)

func (a *App) Home(ctx context.Context) error {
	renderHome(a.out, a.store.GetState())
	return nil
}

func (a *App) Products(ctx context.Context) error {
	renderProducts(a.out, a.store.GetState().Products.Items)
	return nil
}

func (a *App) Show(ctx context.Context, id int64) error {
	p, ok := state.FindProduct(a.store.GetState(), id)
	if !ok {
		fmt.Fprintf(a.out, "Product %d not found\n", id)
		return fmt.Errorf("show %d: %w", id, common.ErrProductNotFound)
	}
	renderProduct(a.out, p)
	return nil
}

func (a *App) Add(ctx context.Context, id int64) error {
	p, err := a.cartService.Add(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrProductNotFound) {
			fmt.Fprintf(a.out, "Product %d not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}
	fmt.Fprintf(a.out, "Added %q to cart (%d items)\n", p.Title, len(a.cartService.Items(ctx)))
	return nil
}

func (a *App) Remove(ctx context.Context, id int64) error {
	before := len(a.cartService.Items(ctx))
	if err := a.cartService.Remove(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	removed := before - len(a.cartService.Items(ctx))
	fmt.Fprintf(a.out, "Removed %d item(s) with id %d from cart\n", removed, id)
	return nil
}

func (a *App) Cart(ctx context.Context) error {
	renderCart(a.out, a.cartService.Items(ctx), a.cartService.Total(ctx))
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.catalogService.Load(ctx); err != nil {
		fmt.Fprintf(a.out, "Catalog refresh failed: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Catalog loaded: %d products\n", len(a.store.GetState().Products.Items))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	if u := state.CurrentUser(a.store.GetState()); a.isLoggedIn() && u != nil {
		fmt.Fprintf(a.out, "Already logged in as %s\n", u.Email)
		return nil
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.logger.Error(ctx, "reading email failed", "error", err)
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		a.logger.Error(ctx, "reading password failed", "error", err)
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	a.logger.Info(ctx, "user logged in", "email", user.Email)
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.authService.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			fmt.Fprintln(a.out, "Not logged in")
		}
		return err
	}
	fmt.Fprintf(a.out, "%s (since %s)\n", user.Email, user.LoggedInAt.Format("2006-01-02 15:04:05"))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
