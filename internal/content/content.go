// Package content supplies presentation metadata (images, ingredient
// lists, descriptions) for catalog entries. The catalog itself carries none
// of this, so the default implementation derives it from keyword tables on
// the dish name. It sits behind an interface so real catalog metadata can
// replace it without touching any view.
package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/terracotta-tales/terracotta/internal/model"
)

// Decorator is the lookup strategy the views render with.
type Decorator interface {
	ItemImage(name string) string
	CategoryImage(name string) string
	Ingredients(name, category string) []string
	Description(item model.MenuItem, category string) string
}

// KeywordDecorator is the static-table implementation. Cosmetic content
// generation only; nothing here feeds back into order data.
type KeywordDecorator struct{}

var _ Decorator = KeywordDecorator{}

// Hand-picked photos for the house dishes, keyed by lowercased name.
var itemImages = map[string]string{
	"battered calamari":        "https://mojo.generalmills.com/api/public/content/42fcy1-KA0GiwnfkjviV1g_webp_base.webp?v=002b7bd3&t=191ddcab8d1c415fa10fa00a14351227",
	"boneless chicken chaap":   "https://i0.wp.com/www.haleemeats.com/wp-content/uploads/2022/09/IMG_0607.jpg?resize=720%2C900&ssl=1",
	"chicken tikka porota roll": "https://bakewithzoha.com/wp-content/uploads/2024/03/chicken-tikka-paratha-rolls-featured.jpg",
	"club sandwich":            "https://www.cookedbyjulie.com/wp-content/uploads/2025/06/chicken-club-sandwiches-one-500x500.jpg",
	"cream of mushroom soup":   "https://www.allrecipes.com/thmb/kX9HDmz1gmYTKpVIyzk3BdXPFrk=/0x512/filters:no_upscale():max_bytes(150000):strip_icc()/13096-Cream-of-Mushroom-Soup-ddmfs-4x3-293-b505e37374d74e81807e8a93bcdd7bab.jpg",
	"fusion phuchka":           "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT3mBSArEjAf8L6tUfiS5viPZuja8hpOPZj7Q&s",
	"loitta fish fry":          "https://blogger.googleusercontent.com/img/b/R29vZ2xl/AVvXsEhG4M2JVxJeyrsutu_RAYLEeclAkVGM-7FuxUd6p9ZLPikS_-IIdcYgEUfsSOUrqekyvmKpI44OK37pHTI2pa_ib-ivCmBtaF7Z_LvyAfOr16pWv1IFGNX8dqT-MVz3DKPN_xfMuykHSQRO/s1600/loitta.JPG",
	"maki roll":                "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQ8AL3oDaJYBVkhpemJXnhIt4iR1Y3VJ8fR9w&s",
	"minced beef porota roll":  "https://merbow.cpcdn.com/global-web/production/step_attachments/cd5yytjgc0ckrfnqhdrg/video.thumbnail.0000000.jpg",
	"spicy chingri skewers":    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSbNhWkUSBjZ_Fx5sp3wAg6j38GSHHLXBSndA&s",
	"tandoori prawn skewers":   "https://flawlessfood.co.uk/wp-content/uploads/2022/06/Tandoori-King-Prawn-Skewers-168-Flawless.jpg",
}

// categoryImages maps a substring of the category name to its card image.
// Order matters: first match wins.
var categoryImages = []struct {
	substr string
	url    string
}{
	{"snacks", "https://i.ibb.co/B5KfPhnG/Gemini-Generated-Image-4c6lpy4c6lpy4c6l.png"},
	{"charcoal", "https://i.ibb.co/S4hS0LM7/Gemini-Generated-Image-fdalovfdalovfdal.png"},
	{"grill", "https://i.ibb.co/S4hS0LM7/Gemini-Generated-Image-fdalovfdalovfdal.png"},
	{"mains", "https://i.ibb.co/qLd6kLQ4/Gemini-Generated-Image-schkqtschkqtschk.png"},
	{"accompaniments", "https://i.ibb.co/LDZCshYP/Gemini-Generated-Image-g2pjiwg2pjiwg2pj.png"},
	{"shared", "https://i.ibb.co/FbMQn7MS/Gemini-Generated-Image-lgkdhnlgkdhnlgkd.png"},
	{"desserts", "https://i.ibb.co/Jj8mwbPN/Gemini-Generated-Image-qstgalqstgalqstg.png"},
	{"kids", "https://i.ibb.co/2D4hrdT/Gemini-Generated-Image-1bvdm1bvdm1bvdm1.png"},
	{"drinks", "https://i.ibb.co/GvZCx7f5/Gemini-Generated-Image-om93xnom93xnom93.png"},
	{"coffee", "https://i.ibb.co/TxXx1DXS/Gemini-Generated-Image-u4t4zru4t4zru4t4.png"},
	{"featured", "https://i.ibb.co/G4T5nqf5/Gemini-Generated-Image-ph74cdph74cdph74.png"},
}

// keywordRules maps name substrings to a search keyword for stock photos.
var keywordRules = []struct {
	substrs []string
	keyword string
}{
	{[]string{"chicken"}, "chicken"},
	{[]string{"beef"}, "beef"},
	{[]string{"mutton", "lamb"}, "lamb"},
	{[]string{"duck"}, "duck"},
	{[]string{"prawn", "chingri"}, "prawn"},
	{[]string{"fish", "ilish", "rupchanda"}, "fish"},
	{[]string{"seafood"}, "seafood"},
	{[]string{"dessert", "ice cream", "pudding"}, "dessert"},
	{[]string{"coffee", "latte", "cappuccino"}, "coffee"},
	{[]string{"lassi", "lemonade", "juice"}, "drink"},
}

var ingredientBank = map[string][]string{
	"chicken":   {"Chicken", "garlic", "ginger", "yogurt", "warming spices"},
	"beef":      {"Beef", "onion", "garlic", "ginger", "toasted spices"},
	"mutton":    {"Mutton", "onion", "garlic", "ginger", "whole spices"},
	"lamb":      {"Lamb", "onion", "garlic", "ginger", "aromatic spices"},
	"duck":      {"Duck", "onion", "garlic", "ginger", "bhuna spices"},
	"prawn":     {"Prawn", "coconut milk", "garlic", "ginger", "green chili"},
	"fish":      {"Fresh fish", "mustard", "green chili", "turmeric", "mustard oil"},
	"seafood":   {"Seafood medley", "coconut milk", "garlic", "ginger", "spices"},
	"vegetable": {"Seasonal vegetables", "onion", "garlic", "ginger", "spices"},
	"rice":      {"Basmati rice", "ghee", "whole spices"},
	"bread":     {"Flour", "ghee", "salt"},
	"dessert":   {"Milk", "sugar", "cardamom", "nuts"},
	"drink":     {"Chilled dairy", "sugar", "aromatics"},
	"tea":       {"Tea leaves", "milk", "sugar", "spices"},
	"coffee":    {"Espresso", "steamed milk", "cocoa"},
	"fries":     {"Potatoes", "salt", "oil"},
	"sandwich":  {"Toasted bread", "protein filling", "fresh vegetables"},
}

// ingredientRules picks banks by name substring; category-driven picks are
// handled separately in Ingredients.
var ingredientRules = []struct {
	substrs []string
	bank    string
}{
	{[]string{"chicken"}, "chicken"},
	{[]string{"beef"}, "beef"},
	{[]string{"mutton"}, "mutton"},
	{[]string{"lamb"}, "lamb"},
	{[]string{"duck"}, "duck"},
	{[]string{"prawn", "chingri"}, "prawn"},
	{[]string{"fish", "ilish", "rupchanda"}, "fish"},
	{[]string{"seafood"}, "seafood"},
	{[]string{"vegetable"}, "vegetable"},
	{[]string{"rice", "polao", "khichuri"}, "rice"},
	{[]string{"naan", "porota", "luchi"}, "bread"},
	{[]string{"pudding", "ice cream"}, "dessert"},
	{[]string{"lassi", "lemonade"}, "drink"},
	{[]string{"latte", "cappuccino"}, "coffee"},
	{[]string{"tea"}, "tea"},
	{[]string{"fries"}, "fries"},
	{[]string{"sandwich"}, "sandwich"},
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ItemImage returns the hand-picked photo for known dishes, otherwise a
// stock-photo search URL built from name keywords.
func (KeywordDecorator) ItemImage(name string) string {
	lower := strings.ToLower(name)
	if u, ok := itemImages[lower]; ok {
		return u
	}
	keywords := []string{"bangladeshi food"}
	for _, rule := range keywordRules {
		if containsAny(lower, rule.substrs) {
			keywords = append(keywords, rule.keyword)
		}
	}
	keywords = unique(keywords)
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	return fmt.Sprintf("https://source.unsplash.com/120x120/?%s",
		url.QueryEscape(strings.Join(keywords, ",")))
}

// CategoryImage matches the category name against the card-image table.
func (KeywordDecorator) CategoryImage(name string) string {
	lower := strings.ToLower(name)
	for _, e := range categoryImages {
		if strings.Contains(lower, e.substr) {
			return e.url
		}
	}
	return "https://source.unsplash.com/600x450/?restaurant,food"
}

// Ingredients builds a plausible ingredient list from the dish name and its
// category, capped at six entries.
func (KeywordDecorator) Ingredients(name, category string) []string {
	lower := strings.ToLower(name)
	var out []string
	for _, rule := range ingredientRules {
		if containsAny(lower, rule.substrs) {
			out = append(out, ingredientBank[rule.bank]...)
		}
	}
	switch category {
	case "Desserts":
		out = append(out, ingredientBank["dessert"]...)
	case "Drinks":
		out = append(out, ingredientBank["drink"]...)
	case "Coffee":
		out = append(out, ingredientBank["coffee"]...)
	}
	if len(out) == 0 {
		out = []string{"House spice blend", "seasonal ingredients", "fresh herbs"}
	}
	out = unique(out)
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

// Description prefers the catalog's own text and falls back to generated
// copy from name and category.
func (KeywordDecorator) Description(item model.MenuItem, category string) string {
	if item.Description != "" {
		return item.Description
	}
	return fmt.Sprintf(
		"%s is a %s favorite prepared with our clay-fired techniques. "+
			"Expect warm spices, balanced heat, and a finish that stays fragrant table-side.",
		item.Name, strings.ToLower(category))
}
