package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(id int64, title, p string) models.Product {
	return models.Product{ID: id, Title: title, Category: "misc", Price: decimal.RequireFromString(p)}
}

func TestStatusLine(t *testing.T) {
	s := state.InitialState()
	assert.Equal(t, "(guest, cart: 0)", statusLine(s))

	s = state.Reduce(s, state.NewAuthLogin(&models.User{Email: "a@b.c", LoggedInAt: time.Now()}))
	s = state.Reduce(s, state.NewCartAdd(item(1, "x", "1")))
	s = state.Reduce(s, state.NewCartAdd(item(1, "x", "1")))
	assert.Equal(t, "(a@b.c, cart: 2)", statusLine(s))
}

func TestRenderHome(t *testing.T) {
	var buf bytes.Buffer
	renderHome(&buf, state.InitialState())
	assert.Contains(t, buf.String(), "Loading products...")

	items := make([]models.Product, 0, 8)
	for i := int64(1); i <= 8; i++ {
		items = append(items, item(i, "P"+string(rune('A'+i-1)), "1.5"))
	}
	s := state.Reduce(nil, state.NewCatalogSet(items))

	buf.Reset()
	renderHome(&buf, s)
	out := buf.String()
	assert.Contains(t, out, "PF")
	assert.NotContains(t, out, "PG")
	assert.Contains(t, out, "$1.50")
}

func TestRenderProducts(t *testing.T) {
	var buf bytes.Buffer
	renderProducts(&buf, nil)
	assert.Equal(t, "No products available.\n", buf.String())

	buf.Reset()
	p := item(7, strings.Repeat("x", 60), "109.95")
	p.Rating = models.Rating{Rate: 3.9, Count: 120}
	renderProducts(&buf, []models.Product{p})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], strings.Repeat("x", 37)+"...")
	assert.Contains(t, lines[1], "$109.95")
	assert.Contains(t, lines[1], "3.9 (120)")
}

func TestRenderProduct(t *testing.T) {
	var buf bytes.Buffer
	p := item(3, "Jacket", "55.99")
	p.Description = "Warm and dry"
	p.Image = "https://img/3.jpg"
	renderProduct(&buf, p)

	out := buf.String()
	assert.Contains(t, out, "Jacket")
	assert.Contains(t, out, "$55.99")
	assert.Contains(t, out, "https://img/3.jpg")
	assert.True(t, strings.HasSuffix(out, "Warm and dry\n"))
}

func TestRenderCart(t *testing.T) {
	var buf bytes.Buffer
	renderCart(&buf, nil, decimal.Zero)
	assert.Equal(t, "Your cart is empty.\n", buf.String())

	buf.Reset()
	items := []models.Product{item(1, "Backpack", "109.95"), item(1, "Backpack", "109.95"), item(2, "T-Shirt", "22.3")}
	renderCart(&buf, items, decimal.RequireFromString("242.2"))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "Backpack"))
	assert.Contains(t, out, "$22.30")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "$242.20")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
