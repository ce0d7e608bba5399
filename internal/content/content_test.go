package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracotta-tales/terracotta/internal/model"
)

func TestItemImage(t *testing.T) {
	t.Parallel()

	dec := KeywordDecorator{}

	t.Run("known dish uses the curated photo", func(t *testing.T) {
		t.Parallel()
		got := dec.ItemImage("Tandoori Prawn Skewers")
		assert.Equal(t, itemImages["tandoori prawn skewers"], got)
		// Case-insensitive lookup.
		assert.Equal(t, got, dec.ItemImage("TANDOORI PRAWN SKEWERS"))
	})

	t.Run("unknown dish builds a keyword search", func(t *testing.T) {
		t.Parallel()
		got := dec.ItemImage("Duck Bhuna")
		assert.Contains(t, got, "source.unsplash.com")
		assert.Contains(t, got, "duck")
	})

	t.Run("keywords are capped at three", func(t *testing.T) {
		t.Parallel()
		got := dec.ItemImage("chicken beef prawn fish seafood")
		query := got[strings.LastIndex(got, "?")+1:]
		assert.LessOrEqual(t, strings.Count(query, "%2C"), 2)
	})
}

func TestCategoryImage(t *testing.T) {
	t.Parallel()

	dec := KeywordDecorator{}
	assert.Contains(t, dec.CategoryImage("Charcoal Grill"), "i.ibb.co")
	assert.Equal(t, dec.CategoryImage("Charcoal Grill"), dec.CategoryImage("From the Grill"))
	assert.Contains(t, dec.CategoryImage("Something Else"), "restaurant,food")
}

func TestIngredients(t *testing.T) {
	t.Parallel()

	dec := KeywordDecorator{}

	tests := []struct {
		name     string
		dish     string
		category string
		contains string
	}{
		{name: "chicken dish", dish: "Boneless Chicken Chaap", category: "Charcoal Grill", contains: "Chicken"},
		{name: "prawn by bangla word", dish: "Spicy Chingri Skewers", category: "Charcoal Grill", contains: "Prawn"},
		{name: "category fallback", dish: "Patishapta", category: "Desserts", contains: "cardamom"},
		{name: "bread by porota", dish: "Minced Beef Porota Roll", category: "Mains", contains: "Flour"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dec.Ingredients(tt.dish, tt.category)
			require.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), 6)
			assert.Contains(t, got, tt.contains)
		})
	}

	t.Run("no match yields the house default", func(t *testing.T) {
		t.Parallel()
		got := dec.Ingredients("Mystery Plate", "Specials")
		assert.Equal(t, []string{"House spice blend", "seasonal ingredients", "fresh herbs"}, got)
	})

	t.Run("no duplicates", func(t *testing.T) {
		t.Parallel()
		got := dec.Ingredients("Chicken Chicken Chicken", "Mains")
		seen := map[string]bool{}
		for _, ing := range got {
			assert.False(t, seen[ing], "duplicate %q", ing)
			seen[ing] = true
		}
	})
}

func TestDescription(t *testing.T) {
	t.Parallel()

	dec := KeywordDecorator{}

	withOwn := model.MenuItem{Name: "Maki Roll", Description: "House maki with pickled mango heart."}
	assert.Equal(t, withOwn.Description, dec.Description(withOwn, "Mains"))

	generated := dec.Description(model.MenuItem{Name: "Morog Polao"}, "Mains")
	assert.Contains(t, generated, "Morog Polao is a mains favorite")
	assert.Contains(t, generated, "clay-fired")
}
