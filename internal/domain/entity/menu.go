package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MenuItem is a sellable item and its unit price.
type MenuItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"-"`
}

// MarshalJSON renders the price with two decimals
func (m MenuItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name  string `json:"name"`
		Price string `json:"price"`
	}{
		Name:  m.Name,
		Price: m.Price.StringFixed(2),
	})
}

// MenuCategory groups menu items for display (e.g. Drinks, Snacks).
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Menu is the price table. Categories are only for display; lookups go
// through a single merged index where a later category overrides an
// earlier one for the same name.
type Menu struct {
	Categories []MenuCategory `json:"categories"`
	index      map[string]decimal.Decimal
}

// NewMenu builds a menu from its categories.
func NewMenu(categories ...MenuCategory) *Menu {
	m := &Menu{
		Categories: categories,
		index:      make(map[string]decimal.Decimal),
	}
	for _, c := range categories {
		for _, item := range c.Items {
			m.index[item.Name] = item.Price
		}
	}
	return m
}

// Lookup returns the unit price of name.
func (m *Menu) Lookup(name string) (decimal.Decimal, bool) {
	price, ok := m.index[name]
	return price, ok
}

// Len returns the number of distinct item names.
func (m *Menu) Len() int {
	return len(m.index)
}
