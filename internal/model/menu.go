package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a product or category identifier. The backend serves numeric ids,
// older saved carts carry them as strings; both decode into the same value.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty id")
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// MenuItem is one dish as served by the catalog endpoint. Read-only.
type MenuItem struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

// Category groups menu items; item order is the server's.
type Category struct {
	ID    ID         `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Menu is the full catalog payload of GET /api/menu.
type Menu struct {
	Categories []Category `json:"categories"`
}

// FindItem scans the catalog for an item id and reports the owning
// category name.
func (m Menu) FindItem(id ID) (MenuItem, string, bool) {
	for _, c := range m.Categories {
		for _, it := range c.Items {
			if it.ID == id {
				return it, c.Name, true
			}
		}
	}
	return MenuItem{}, "", false
}

// FindCategory looks a category up by id.
func (m Menu) FindCategory(id ID) (Category, bool) {
	for _, c := range m.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FormatPrice renders minor units the way the menu displays them:
// whole amounts without decimals, anything else with two.
func FormatPrice(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("BDT %d", cents/100)
	}
	whole := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	return "BDT " + strconv.FormatInt(whole, 10) + fmt.Sprintf(".%02d", frac)
}
