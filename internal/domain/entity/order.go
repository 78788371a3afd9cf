package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OrderItem is one menu item on an order. It only lives while the order is
// being built; the stored sale keeps it as part of the encoded item list.
type OrderItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"-"`
}

// LineTotal returns unit price times quantity, unrounded.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MarshalJSON renders money fields with two decimals
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice string `json:"unit_price"`
		LineTotal string `json:"line_total"`
	}{
		Alias:     Alias(i),
		UnitPrice: i.UnitPrice.StringFixed(2),
		LineTotal: i.LineTotal().StringFixed(2),
	})
}

// Totals holds the three amounts computed for an order.
type Totals struct {
	Subtotal   decimal.Decimal `json:"-"`
	GST        decimal.Decimal `json:"-"`
	FinalTotal decimal.Decimal `json:"-"`
}

// MarshalJSON renders the totals with two decimals
func (t Totals) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Subtotal   string `json:"subtotal"`
		GST        string `json:"gst"`
		FinalTotal string `json:"final_total"`
	}{
		Subtotal:   t.Subtotal.StringFixed(2),
		GST:        t.GST.StringFixed(2),
		FinalTotal: t.FinalTotal.StringFixed(2),
	})
}
