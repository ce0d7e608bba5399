package ui

import (
	"fmt"
	"strings"

	"github.com/terracotta-tales/terracotta/internal/cart"
	"github.com/terracotta-tales/terracotta/internal/model"
)

// Pure projections of domain state into display lines. Nothing in this file
// touches the terminal, which keeps every projection testable as plain
// string functions.

// EmptyCartMessage is shown wherever an empty cart renders.
const EmptyCartMessage = "Your cart is empty."

// CheckoutEnabled reports whether the checkout control is active.
func CheckoutEnabled(t cart.Totals) bool { return t.Count > 0 }

// CartLines renders the cart rows (sorted by name upstream) plus the
// summary block. Subtotal and total are the same figure; the menu has no
// tax or discounts.
func CartLines(lines []model.LineItem, t cart.Totals) []string {
	if len(lines) == 0 {
		return []string{EmptyCartMessage}
	}

	out := make([]string, 0, len(lines)+4)
	for _, l := range lines {
		out = append(out, fmt.Sprintf("%d × %s  %s",
			l.Qty, l.Name, model.FormatPrice(l.LineTotal())))
	}
	out = append(out,
		"",
		fmt.Sprintf("Items: %d", t.Count),
		fmt.Sprintf("Subtotal: %s", model.FormatPrice(t.Subtotal)),
		fmt.Sprintf("Total: %s", model.FormatPrice(t.Subtotal)),
	)
	return out
}

// CheckoutSummary is the order recap shown above the checkout form.
func CheckoutSummary(lines []model.LineItem, t cart.Totals) []string {
	if len(lines) == 0 {
		return []string{EmptyCartMessage}
	}
	out := []string{"Order summary", ""}
	for _, l := range lines {
		out = append(out, fmt.Sprintf("%d × %s  %s",
			l.Qty, l.Name, model.FormatPrice(l.LineTotal())))
	}
	out = append(out, "", fmt.Sprintf("Total due: %s", model.FormatPrice(t.Subtotal)))
	return out
}

// CategoryLine is one row of the landing grid: name, dish count, card image.
func CategoryLine(c model.Category, imageURL string) string {
	return fmt.Sprintf("%s — %d dishes ready to explore\n%s",
		Title.Render(c.Name), len(c.Items), Muted.Render(imageURL))
}

// ItemLine is one catalog row with the in-cart badge.
func ItemLine(it model.MenuItem, inCart int) string {
	badge := ""
	if inCart > 0 {
		badge = "  " + Accent.Render(fmt.Sprintf("[%d in cart]", inCart))
	}
	return fmt.Sprintf("%s  %s%s", it.Name, model.FormatPrice(it.PriceCents), badge)
}

// ItemDetail renders the single-dish page: price, category tag, generated
// description and ingredients, image URL.
func ItemDetail(it model.MenuItem, category, description, imageURL string, ingredients []string) []string {
	lines := []string{
		Title.Render(it.Name),
		fmt.Sprintf("%s · %s", category, model.FormatPrice(it.PriceCents)),
		"",
		description,
		"",
		"Ingredients:",
	}
	for _, ing := range ingredients {
		lines = append(lines, "  • "+ing)
	}
	lines = append(lines, "", Muted.Render(imageURL))
	return lines
}

// CartBadge renders the header cart indicator.
func CartBadge(t cart.Totals) string {
	return fmt.Sprintf("Cart: %d  %s", t.Count, model.FormatPrice(t.Subtotal))
}

// MenuUnavailable is the landing error card when even the fallback failed.
func MenuUnavailable() []string {
	return []string{
		Title.Render("Menu unavailable"),
		"Please check back soon for the latest dishes.",
	}
}

// LoadError is the inline error state for the detail pages.
func LoadError(err error) []string {
	return []string{
		Title.Render("Unable to load menu"),
		"Please refresh or try again later.",
		"",
		Muted.Render(strings.TrimSpace(err.Error())),
	}
}
