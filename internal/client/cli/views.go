package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/shopspring/decimal"
)

const maxTitleWidth = 40

// statusLine renders the prompt status from the current state.
func statusLine(s *state.AppState) string {
	who := "guest"
	if u := state.CurrentUser(s); state.IsAuthenticated(s) && u != nil {
		who = u.Email
	}
	return fmt.Sprintf("(%s, cart: %d)", who, state.CartCount(s))
}

func renderHome(w io.Writer, s *state.AppState) {
	fmt.Fprintln(w, "Featured products")
	featured := state.FeaturedProducts(s, state.FeaturedCount)
	if len(featured) == 0 {
		fmt.Fprintln(w, "Loading products...")
		return
	}
	renderProducts(w, featured)
}

func renderProducts(w io.Writer, items []models.Product) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No products available.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tRATING")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f (%d)\n",
			p.ID, truncate(p.Title, maxTitleWidth), p.Category, price(p.Price), p.Rating.Rate, p.Rating.Count)
	}
	_ = tw.Flush()
}

func renderProduct(w io.Writer, p models.Product) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", p.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", p.Title)
	fmt.Fprintf(tw, "Category:\t%s\n", p.Category)
	fmt.Fprintf(tw, "Price:\t%s\n", price(p.Price))
	fmt.Fprintf(tw, "Rating:\t%.1f (%d reviews)\n", p.Rating.Rate, p.Rating.Count)
	if p.Image != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", p.Image)
	}
	_ = tw.Flush()
	if p.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Description)
	}
}

func renderCart(w io.Writer, items []models.Product, total decimal.Decimal) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tTITLE\tPRICE")
	for i, p := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", i+1, p.ID, truncate(p.Title, maxTitleWidth), price(p.Price))
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%s\n", price(total))
	_ = tw.Flush()
}

func price(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}
